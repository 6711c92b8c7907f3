/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/laagvlieger/skills-integrate-mcp-with-copilot/cmd"

func main() {
	cmd.Execute()
}
