package contracts

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// ArtifactLoader loads compiled contract artifacts from the artifacts directory.
// Both the Remix layout (<dir>/<Name>.json) and the Foundry layout
// (<dir>/<Name>.sol/<Name>.json) are supported.
type ArtifactLoader struct {
	dir string
}

// NewArtifactLoader creates a loader rooted at the configured artifacts directory
func NewArtifactLoader(cfg *config.RuntimeConfig) *ArtifactLoader {
	dir := cfg.ProjectConfig.ArtifactsDir()
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return &ArtifactLoader{dir: dir}
}

// rawArtifact covers the Remix, Hardhat and Foundry artifact shapes
type rawArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode json.RawMessage `json:"bytecode"`
	Data     *struct {
		Bytecode json.RawMessage `json:"bytecode"`
	} `json:"data"`
}

// Load reads and parses the artifact for a contract name
func (l *ArtifactLoader) Load(name string) (*domain.Artifact, error) {
	candidates := []string{
		filepath.Join(l.dir, name+".json"),
		filepath.Join(l.dir, name+".sol", name+".json"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path) //nolint:gosec // path built from config
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
		}
		return parseArtifact(name, path, data)
	}

	return nil, fmt.Errorf("%w: %s (looked in %s)", domain.ErrArtifactNotFound, name, l.dir)
}

func parseArtifact(name, path string, data []byte) (*domain.Artifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, path, err)
	}

	if len(raw.ABI) == 0 || bytes.Equal(raw.ABI, []byte("null")) {
		return nil, fmt.Errorf("%w: %s has no abi", domain.ErrInvalidArtifact, path)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to parse abi: %v", domain.ErrInvalidArtifact, path, err)
	}

	bytecodeField := raw.Bytecode
	if len(bytecodeField) == 0 && raw.Data != nil {
		bytecodeField = raw.Data.Bytecode
	}
	hexCode, err := bytecodeHex(bytecodeField)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, path, err)
	}
	if strings.Contains(hexCode, "__") {
		return nil, fmt.Errorf("%w: %s has unlinked library references", domain.ErrInvalidArtifact, path)
	}
	bytecode, err := hex.DecodeString(strings.TrimPrefix(hexCode, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bytecode is not valid hex: %v", domain.ErrInvalidArtifact, path, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("%w: %s has empty bytecode (abstract contract or interface?)", domain.ErrInvalidArtifact, path)
	}

	return &domain.Artifact{
		Name:     name,
		Path:     path,
		ABI:      parsedABI,
		Bytecode: bytecode,
	}, nil
}

// bytecodeHex accepts either "0x..." or {"object": "0x..."}
func bytecodeHex(field json.RawMessage) (string, error) {
	if len(field) == 0 {
		return "", errors.New("missing bytecode")
	}

	var s string
	if err := json.Unmarshal(field, &s); err == nil {
		return s, nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(field, &obj); err != nil {
		return "", fmt.Errorf("unrecognised bytecode format: %w", err)
	}
	return obj.Object, nil
}
