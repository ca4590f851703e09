/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import "github.com/suparena/storemeter/cmd/storemeter/cmd"

func main() {
	cmd.Execute()
}
