package main

import (
	"github.com/mj1618/wincap/cmd"

	// Register the Windows backend with the platform provider.
	_ "github.com/mj1618/wincap/internal/platform/win"
)

func main() {
	cmd.Execute()
}
