package config

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// SendersManager turns sender configurations into transaction signers
type SendersManager struct {
	senders map[string]config.SenderConfig
}

func NewSendersManager(cfg *config.RuntimeConfig) *SendersManager {
	return &SendersManager{
		senders: cfg.ProjectConfig.Senders,
	}
}

// Address returns the account address of a sender without building a signer
func (m *SendersManager) Address(name string) (common.Address, error) {
	key, err := m.privateKey(name)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Transactor builds bind.TransactOpts for the named sender on the given chain
func (m *SendersManager) Transactor(ctx context.Context, name string, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := m.privateKey(name)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor for sender %s: %w", name, err)
	}
	opts.Context = ctx

	return opts, nil
}

func (m *SendersManager) privateKey(name string) (*ecdsa.PrivateKey, error) {
	sender, ok := m.senders[name]
	if !ok {
		return nil, fmt.Errorf("%w: sender '%s' not found in %s [senders]", domain.ErrSenderNotConfigured, name, ProjectFile)
	}

	if sender.Type != config.SenderTypePrivateKey {
		return nil, fmt.Errorf("%w: %s (sender '%s')", domain.ErrUnsupportedSender, sender.Type, name)
	}

	raw, err := ExpandValue(fmt.Sprintf("senders.%s.private_key", name), sender.PrivateKey)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, fmt.Errorf("%w: sender '%s' has no private key", domain.ErrSenderNotConfigured, name)
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key for sender %s: %w", name, err)
	}
	return key, nil
}
