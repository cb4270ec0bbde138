// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package main

import (
	"github.com/tokenforge/tokenforge-cli/cmd"
)

func main() {
	cmd.Execute()
}
