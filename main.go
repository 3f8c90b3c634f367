/*
Copyright © 2025 commitcheck contributors
*/
package main

import "github.com/commitcheck/commitcheck/cmd"

func main() {
	cmd.Execute()
}
