// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.

// Package solanaclient wraps the Solana JSON-RPC client for the account
// existence checks the config wizard performs.
package solanaclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/alexcolls/solana-playground/pkg/constants"
)

var (
	// ErrAccountNotFound means the address parsed but no account lives
	// there. Callers treat it as a retryable validation failure.
	ErrAccountNotFound = errors.New("account not found on chain")

	// ErrUnreachable wraps transport failures and deadline expiries.
	// Callers treat it as fatal: the wizard aborts rather than retrying.
	ErrUnreachable = errors.New("rpc endpoint unreachable")
)

// Client resolves on-chain accounts for wizard validators.
type Client interface {
	// ResolveMint checks that the address holds an SPL token mint.
	ResolveMint(ctx context.Context, address string) error
	// ResolveTokenAccount checks that the address holds an SPL token account.
	ResolveTokenAccount(ctx context.Context, address string) error
}

type rpcClient struct {
	client *rpc.Client
}

func New(rpcURL string) Client {
	return &rpcClient{
		client: rpc.New(rpcURL),
	}
}

func (c *rpcClient) ResolveMint(ctx context.Context, address string) error {
	return c.resolveOwnedByTokenProgram(ctx, address, "an SPL token mint")
}

func (c *rpcClient) ResolveTokenAccount(ctx context.Context, address string) error {
	return c.resolveOwnedByTokenProgram(ctx, address, "an SPL token account")
}

func (c *rpcClient) resolveOwnedByTokenProgram(ctx context.Context, address string, kind string) error {
	account, err := c.fetchAccount(ctx, address)
	if err != nil {
		return err
	}
	if !account.Owner.Equals(solana.TokenProgramID) {
		return fmt.Errorf("account %s is not %s", address, kind)
	}
	return nil
}

func (c *rpcClient) fetchAccount(ctx context.Context, address string) (*rpc.Account, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.APIRequestTimeout)
	defer cancel()

	out, err := c.client.GetAccountInfo(ctx, pubkey)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}
	return out.Value, nil
}
