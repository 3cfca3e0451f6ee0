package noncereuse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client provides a high-level API for reused-nonce key recovery.
type Client struct {
	parser InputParser
	logger zerolog.Logger
}

// NewClient creates a new client reading the line format, with logging disabled.
func NewClient() *Client {
	return &Client{
		parser: &LineParser{},
		logger: zerolog.Nop(),
	}
}

// WithParser sets a custom input parser.
func (c *Client) WithParser(parser InputParser) *Client {
	c.parser = parser
	return c
}

// WithLogger sets the logger used to report progress.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// RecoverKey parses the five values from source and recovers k and d.
//
// Args:
//   - ctx: Context for cancellation.
//   - source: Path to the input (format depends on the parser).
//
// Returns:
//   - RecoveryResult if the arithmetic completed, error otherwise.
func (c *Client) RecoverKey(ctx context.Context, source string) (*RecoveryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := c.parser.ParseInput(source)
	if err != nil {
		c.logger.Error().Err(err).Str("source", source).Bool("input_error", IsInputError(err)).Msg("failed to parse input")
		return nil, errors.Wrapf(err, "failed to parse %s", source)
	}
	c.logger.Debug().Str("source", source).Msg("parsed input")

	return c.RecoverKeyFromInput(ctx, in)
}

// RecoverKeyFromInput recovers k and d from already parsed values.
func (c *Client) RecoverKeyFromInput(ctx context.Context, in *Input) (*RecoveryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := Recover(in)
	if err != nil {
		c.logger.Error().Err(err).Bool("precondition", IsPreconditionError(err)).Msg("recovery failed")
		return nil, err
	}

	c.logger.Info().Str("k", result.Nonce.Text(16)).Msg("derived reused nonce and private key")
	return result, nil
}
