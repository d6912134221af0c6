package main

type IssueCmd struct {
	ISBN string `arg:"" name:"isbn" help:"ISBN of the book to issue"`
}

func (cmd *IssueCmd) Run(g *Globals) error {
	return changeStatus(g, issueChange, cmd.ISBN)
}

type ReturnCmd struct {
	ISBN string `arg:"" name:"isbn" help:"ISBN of the book to return"`
}

func (cmd *ReturnCmd) Run(g *Globals) error {
	return changeStatus(g, returnChange, cmd.ISBN)
}
