package cli

import (
	"github.com/rdnfmt/rdn"
	"github.com/rdnfmt/rdn/internal/rdnconfig"
	"github.com/rdnfmt/rdn/tokenizer"
)

func parseOptions(cfg rdnconfig.Config) rdn.Options {
	handling := tokenizer.Disallow
	if cfg.AllowComments {
		handling = tokenizer.Skip
	}
	return rdn.Options{
		CommentHandling:     handling,
		AllowTrailingCommas: cfg.AllowTrailingCommas,
		MaxDepth:            cfg.MaxDepth,
	}
}
