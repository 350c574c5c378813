package main

import "github.com/thereayou/contactbook/cmd/server"

func main() {
	s := server.NewServer()
	s.Run()
}
