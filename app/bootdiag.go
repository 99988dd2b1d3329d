//go:build !tinygo || !bootdebug

package app

import "longbrot/hal"

func bootDiagStart(hal.HAL) {}

func bootScreen(hal.HAL, string) {}
