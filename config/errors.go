// SPDX-License-Identifier: MIT
package config

import "fmt"

const opLoad = "Load"

func configErrorf(op string, err error) error {
	return fmt.Errorf("config.%s: %w", op, err)
}
