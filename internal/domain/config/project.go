package config

const (
	DefaultArtifactsDir             = "artifacts"
	DefaultLedgerDir                = "deploy"
	DefaultPlanFile                 = "deploy/zkcenter.yaml"
	DefaultProxyArtifact            = "ERC1967Proxy"
	DefaultTransparentProxyArtifact = "TransparentUpgradeableProxy"
	ProjectFile                     = "zkdeploy.toml"
)

// ProjectConfig represents zkdeploy.toml
type ProjectConfig struct {
	Project  ProjectSettings          `toml:"project"`
	Networks map[string]NetworkConfig `toml:"networks"`
}

// ProjectSettings holds paths and deployment defaults
type ProjectSettings struct {
	Artifacts                string `toml:"artifacts,omitempty"`
	LedgerDir                string `toml:"ledger_dir,omitempty"`
	Plan                     string `toml:"plan,omitempty"`
	ProxyKind                string `toml:"proxy_kind,omitempty"`
	ProxyArtifact            string `toml:"proxy_artifact,omitempty"`
	TransparentProxyArtifact string `toml:"transparent_proxy_artifact,omitempty"`
}

// NetworkConfig is one [networks.<name>] table
type NetworkConfig struct {
	RPCURL    string            `toml:"rpc_url"`
	ChainID   uint64            `toml:"chain_id,omitempty"`
	Confirm   bool              `toml:"confirm,omitempty"`
	Addresses map[string]string `toml:"addresses,omitempty"`

	// UnsetVars lists variables referenced by rpc_url that were not set at load time
	UnsetVars []string `toml:"-"`
}

// ApplyDefaults fills unset project settings
func (c *ProjectConfig) ApplyDefaults() {
	if c.Project.Artifacts == "" {
		c.Project.Artifacts = DefaultArtifactsDir
	}
	if c.Project.LedgerDir == "" {
		c.Project.LedgerDir = DefaultLedgerDir
	}
	if c.Project.Plan == "" {
		c.Project.Plan = DefaultPlanFile
	}
	if c.Project.ProxyArtifact == "" {
		c.Project.ProxyArtifact = DefaultProxyArtifact
	}
	if c.Project.TransparentProxyArtifact == "" {
		c.Project.TransparentProxyArtifact = DefaultTransparentProxyArtifact
	}
	if c.Networks == nil {
		c.Networks = make(map[string]NetworkConfig)
	}
}
