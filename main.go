/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Dyvontrae/kingoftokyo/cmd"

func main() {
	cmd.Execute()
}
