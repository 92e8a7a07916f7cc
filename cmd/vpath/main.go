package main

import (
	"fmt"
	"github.com/viant/vpath/cmd"
	"log"
	"os"
)

var Version = "dev"

func main() {
	err := cmd.RunApp(Version, os.Args[1:])
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
