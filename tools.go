//go:build tools
// +build tools

package main

import (
	_ "github.com/air-verse/air"
)
