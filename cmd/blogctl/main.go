package main

import "github.com/daniilsolovey/blog-cms/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
