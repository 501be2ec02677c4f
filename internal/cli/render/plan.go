package render

import (
	"fmt"
	"io"
	"math/big"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type planView struct {
	Contract        string   `yaml:"contract"`
	Artifact        string   `yaml:"artifact"`
	Network         string   `yaml:"network"`
	ChainID         uint64   `yaml:"chain_id"`
	RPCURL          string   `yaml:"rpc_url"`
	Explorer        string   `yaml:"explorer,omitempty"`
	Sender          string   `yaml:"sender"`
	From            string   `yaml:"from"`
	Arguments       []string `yaml:"arguments"`
	ConstructorArgs string   `yaml:"constructor_args"`
	BytecodeSize    int      `yaml:"bytecode_size"`
}

// PlanRenderer renders a prepared deployment as YAML
type PlanRenderer struct {
	out io.Writer
}

// NewPlanRenderer creates a new plan renderer
func NewPlanRenderer(out io.Writer) *PlanRenderer {
	return &PlanRenderer{
		out: out,
	}
}

// RenderPlan writes the plan
func (r *PlanRenderer) RenderPlan(plan *domain.DeploymentPlan) error {
	view := planView{
		Contract:        plan.Artifact.Name,
		Artifact:        plan.Artifact.Path,
		Network:         plan.Network.Name,
		ChainID:         plan.Network.ChainID,
		RPCURL:          RedactURL(plan.Network.RPCURL),
		Explorer:        plan.Network.ExplorerURL,
		Sender:          plan.Sender,
		From:            plan.From,
		Arguments:       lo.Map(plan.ConstructorArgs, func(arg any, _ int) string { return formatArg(arg) }),
		ConstructorArgs: hexutil.Encode(plan.EncodedArgs),
		BytecodeSize:    len(plan.Artifact.Bytecode),
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// RedactURL keeps the scheme and host of an RPC URL. Credentials, path and query
// are replaced since providers put API keys there.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "<redacted>"
	}

	redacted := u.Scheme + "://" + u.Host
	if u.User != nil || strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" {
		redacted += "/<redacted>"
	}
	return redacted
}

func formatArg(arg any) string {
	switch v := arg.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
