package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized grind storage at %s\n", ctx.Store.ConfigPath())
	fmt.Println("Seeded the default exercise catalog and goals.")
	return nil
}
