package cli

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmartel/grind/internal/constants"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type TagListCmd struct{}

func (c *TagListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tags, err := ctx.Store.GetTags()
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Println("No tags defined.")
		return nil
	}

	t := newTable("ID", "Name", "Color")
	for _, tag := range tags {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(tag.Color)).Render("███")
		t.Row(strconv.Itoa(tag.ID), tag.Name, fmt.Sprintf("%s %s", swatch, tag.Color))
	}
	fmt.Println(t)
	return nil
}

type TagAddCmd struct {
	Name  string `arg:"" help:"Tag name (must be unique)."`
	Color string `short:"c" help:"Hex color like #3498db." default:"#3498db"`
}

func (c *TagAddCmd) Validate() error {
	if !hexColorRe.MatchString(c.Color) {
		return fmt.Errorf("color must be a 6-digit hex code like %s", constants.DefaultTagColor)
	}
	return nil
}

func (c *TagAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tag, err := ctx.Store.AddTag(c.Name, c.Color)
	if err != nil {
		return err
	}
	fmt.Printf("Added tag %s (ID %d)\n", tag.Name, tag.ID)
	return nil
}

type TagColorCmd struct {
	ID    int    `arg:"" help:"Tag ID (see 'grind tag list')."`
	Color string `arg:"" help:"New hex color like #3498db."`
}

func (c *TagColorCmd) Validate() error {
	if !hexColorRe.MatchString(c.Color) {
		return fmt.Errorf("color must be a 6-digit hex code like %s", constants.DefaultTagColor)
	}
	return nil
}

func (c *TagColorCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateTagColor(c.ID, c.Color); err != nil {
		return err
	}
	fmt.Printf("Tag %d recolored to %s\n", c.ID, c.Color)
	return nil
}
