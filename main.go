// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/projscan/projscan/cmd/projscan"

func main() {
	cmd.Execute()
}
