package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
)

// Ensure GuideStore implements the interface.
var _ driven.GuideStore = (*GuideStore)(nil)

// GuideStore loads reference guide texts from user-editable files on disk,
// with fallback to embedded defaults. The guides are served to agent hosts
// as MCP resources and stay immutable for the lifetime of a server run.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor.
type GuideStore struct {
	mu       sync.RWMutex
	guideDir string
	cache    map[string]string
	initOnce sync.Once
	initErr  error
}

// defaultGuides contains the embedded default guide texts.
//
//nolint:lll // Guide content is intentionally long and should not be wrapped.
var defaultGuides = map[string]string{
	driven.GuideQuerySyntax: `# Local News Query Syntax

The q parameter accepts advanced boolean queries. The syntax is forwarded
verbatim to the search API.

## Operators

- AND - both terms must match. The default between words: "artificial intelligence"
  behaves like "artificial AND intelligence".
- OR - either term matches: layoffs OR "job cuts" OR downsizing
- NOT - exclude a term: Tesla NOT SpaceX
- NEAR - terms close to each other.

## Phrases and wildcards

- Exact phrases use double quotes: "supply chain", "venture capital".
- Wildcards use *: elect* matches election, electoral, electorate.
  regulat* matches regulation, regulatory, regulator.

## Grouping

Use parentheses to combine: (Apple OR Google) AND smartphone,
startup AND (funding OR investment) AND (tech* OR technolog*).

## Filters

- locations: list of "City, State" or "State" strings,
  e.g. ["San Francisco, California"], ["California", "Texas"].
- theme: one of Business, Economics, Entertainment, Finance, Health,
  Politics, Science, Sports, Tech, Crime, Lifestyle, Travel, General.
- from_: start date, relative ("7 days ago") or absolute ("2024-01-01").
  Maximum 30-day lookback.
- when: headlines window, e.g. "24h", "7d". Maximum 30d.
- page_size: 1-1000 articles per page.
- detection_methods: filter location provenance (dedicated_source,
  standard_format, proximity_mention, ai_extracted).

## Tips

- Put the most important terms first.
- Balance precision and recall: add OR synonyms to broaden,
  NOT exclusions to narrow.
- Avoid deeply nested boolean logic.`,

	driven.GuideWorkflow: `# Local News Workflow Guide

## Simple, direct searches

1. Call search_news with your query.
2. Add locations when you have them.
3. Use a theme filter for broad categorisation.

Good for: quick lookups, known entities, simple topics.

## Enhanced relevance (recommended)

1. Run the enhance-query prompt with your input.
2. Review the enhanced query and suggestions.
3. Call intelligent_search with the enhanced parameters.
4. Iterate if results need refinement (refine-query prompt).

Good for: most searches, domain research, location-specific needs.

## Complex research

1. Run analyze-search-intent to understand the need.
2. Run enhance-query with domain context.
3. Execute several intelligent_search calls with variations.
4. Vary time ranges and location scope.
5. Use get_latest_headlines for breaking developments.

Good for: market research, competitive analysis, trend tracking.

## Clustering

intelligent_search clusters results when result sets are large, the query
contains broad event terms, or the query is short. Each clustered result
represents a distinct story; duplicates across outlets are folded together.
Override with the clustering argument when you want full control.`,
}

// NewGuideStore creates a new file-based guide store.
// If guideDir is empty, defaults to ~/.localnews/guides/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewGuideStore(guideDir string) (*GuideStore, error) {
	if guideDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		guideDir = filepath.Join(home, ".localnews", "guides")
	}

	return &GuideStore{
		guideDir: guideDir,
		cache:    make(map[string]string),
	}, nil
}

// Load returns the guide text for the given name.
// On first call, initialises the guide directory and creates default files.
// Falls back to the embedded default if the file doesn't exist.
func (s *GuideStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if guide, ok := defaultGuides[name]; ok {
			return guide, nil
		}
		return "", fmt.Errorf("guide store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if guide, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return guide, nil
	}
	s.mu.RUnlock()

	guide, err := s.loadFromFile(name)
	if err != nil {
		if defaultGuide, ok := defaultGuides[name]; ok {
			return defaultGuide, nil
		}
		return "", fmt.Errorf("load guide %q: %w", name, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		guide = cached
	} else {
		s.cache[name] = guide
	}
	s.mu.Unlock()

	return guide, nil
}

// Reload clears the guide cache, forcing fresh loads from disk.
func (s *GuideStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the guide directory path.
func (s *GuideStore) Dir() string {
	return s.guideDir
}

// initialise creates the guide directory and default files.
// Called once via sync.Once on first Load().
func (s *GuideStore) initialise() {
	if err := os.MkdirAll(s.guideDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create guide directory: %w", err)
		return
	}

	for name, content := range defaultGuides {
		path := filepath.Join(s.guideDir, name+".md")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default guide %q: %w", name, err)
				return
			}
		}
	}
}

// loadFromFile reads a guide from disk.
func (s *GuideStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.guideDir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
