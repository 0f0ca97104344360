package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lox/fairplay/internal/commitment"
)

// VerifyCmd recomputes a commitment tag so a player can check a revealed
// key/move pair from a past round out of band.
type VerifyCmd struct {
	Key  string `arg:"" help:"Revealed key as hex"`
	Move string `arg:"" help:"Move the tag was computed over"`
	Tag  string `help:"Expected tag; when set, exits non-zero on mismatch"`
}

func (c *VerifyCmd) Run(cli *CLI) error {
	raw, err := hex.DecodeString(strings.ToLower(c.Key))
	if err != nil {
		return fmt.Errorf("key is not valid hex: %w", err)
	}

	tag := commitment.ComputeTag(commitment.Key(raw), c.Move)
	fmt.Println(tag.String())

	if c.Tag != "" && !strings.EqualFold(c.Tag, tag.String()) {
		return fmt.Errorf("tag mismatch: expected %s", strings.ToUpper(c.Tag))
	}
	return nil
}
