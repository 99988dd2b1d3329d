//go:build tinygo

package main

import (
	"longbrot/app"
	"longbrot/hal"
)

func main() {
	app.Run(hal.New())
}
