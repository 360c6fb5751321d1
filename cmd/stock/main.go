package main

import "github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/cli"

func main() {
	cli.Execute()
}
