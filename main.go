package main

import "github.com/nekruzvatanshoev/fareserv/pkg/cmd"

func main() {
	cmd.Execute()
}
