package main

import "github.com/nameredact/nameredact/cmd/nameredact"

func main() { nameredact.Execute() }
