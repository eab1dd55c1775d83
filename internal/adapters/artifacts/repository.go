package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// Repository discovers and indexes Hardhat artifacts
type Repository struct {
	artifactsDir  string
	contracts     map[string]*models.Contract   // key: "sourceName:contractName"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new artifact repository rooted at the configured artifacts directory
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	dir := config.DefaultArtifactsDir
	if cfg.Project != nil && cfg.Project.Project.Artifacts != "" {
		dir = cfg.Project.Project.Artifacts
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return &Repository{
		artifactsDir:  dir,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
		log:           log.With("component", "ArtifactRepository"),
	}
}

// Index discovers all artifacts. It runs once.
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	if _, err := os.Stat(r.artifactsDir); os.IsNotExist(err) {
		return fmt.Errorf("artifacts directory %s not found (run 'npx hardhat compile')", r.artifactsDir)
	}

	err := filepath.Walk(r.artifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}
		// Hardhat writes <source>.sol/<Contract>.json
		if !strings.HasSuffix(filepath.Dir(path), ".sol") {
			return nil
		}
		return r.processArtifact(path)
	})
	if err != nil {
		return err
	}

	r.indexed = true
	return nil
}

// processArtifact adds one artifact file to the index
func (r *Repository) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		r.log.Debug("skipping unparsable artifact", "path", artifactPath, "error", err)
		return nil
	}
	if artifact.ContractName == "" || artifact.SourceName == "" {
		return nil
	}

	contract := &models.Contract{
		Name:         artifact.ContractName,
		SourceName:   artifact.SourceName,
		ArtifactPath: artifactPath,
		Artifact:     &artifact,
	}

	r.contracts[artifact.FullyQualifiedName()] = contract
	r.contractNames[contract.Name] = append(r.contractNames[contract.Name], contract)
	return nil
}

// GetContract retrieves a contract by name or "sourceName:contractName"
func (r *Repository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if contract, ok := r.contracts[key]; ok {
		return contract, nil
	}

	candidates := r.contractNames[key]
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return nil, &domain.UnknownNameError{
			Kind:        "artifact",
			Name:        key,
			Suggestions: r.suggest(key),
			Err:         domain.ErrArtifactNotFound,
		}
	default:
		// Prefer the project's own sources over dependencies
		var local []*models.Contract
		for _, c := range candidates {
			if strings.HasPrefix(c.SourceName, "contracts/") {
				local = append(local, c)
			}
		}
		if len(local) == 1 {
			return local[0], nil
		}
		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			names = append(names, c.Artifact.FullyQualifiedName())
		}
		sort.Strings(names)
		return nil, fmt.Errorf("multiple artifacts named %s, use one of: %s", key, strings.Join(names, ", "))
	}
}

// Names returns every indexed contract name, sorted
func (r *Repository) Names() []string {
	if err := r.Index(); err != nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.contractNames))
	for name := range r.contractNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Repository) suggest(key string) []string {
	names := make([]string, 0, len(r.contractNames))
	for name := range r.contractNames {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for i, m := range fuzzy.Find(key, names) {
		if i == 3 {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

var _ usecase.ArtifactRepository = (*Repository)(nil)
