package base

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// PeriodTiming describes how a sport's periods map onto wall-clock time.
type PeriodTiming struct {
	// PeriodLength is the estimated real-time length of one period,
	// stoppages included.
	PeriodLength time.Duration
	// Buffer is how long after a period's estimated end the box score is
	// trusted to reflect it.
	Buffer time.Duration
	// RegulationPeriods is the number of periods before overtime.
	RegulationPeriods int
}

// EstimatedEnd returns when period n of a game starting at start is
// expected to have ended.
func (t PeriodTiming) EstimatedEnd(start time.Time, n int) time.Time {
	return start.Add(time.Duration(n) * t.PeriodLength)
}

// Due reports whether period n can be captured at now.
func (t PeriodTiming) Due(start time.Time, n int, now time.Time) bool {
	return !now.Before(t.EstimatedEnd(start, n).Add(t.Buffer))
}

// SportPlugin defines the interface each sport plugin must implement.
type SportPlugin interface {
	// Init applies plugin settings from the service config. A nil map
	// keeps the defaults.
	Init(settings map[string]interface{}) error
	Key() string
	DisplayName() string
	Timing() PeriodTiming
}

var (
	registry   = make(map[string]SportPlugin)
	registryMu sync.RWMutex
)

// RegisterPlugin adds a plugin implementation under a key.
// It should be called in each sport plugin's init() function.
// The plugin will be initialized later when retrieved.
func RegisterPlugin(key string, plugin SportPlugin) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if key == "" {
		return fmt.Errorf("plugin key cannot be empty")
	}
	if _, exists := registry[key]; exists {
		return fmt.Errorf("plugin already registered for key %q", key)
	}
	registry[key] = plugin
	return nil
}

// GetPlugin retrieves a plugin by key or returns an error if not found.
func GetPlugin(key string) (SportPlugin, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	plugin, exists := registry[key]
	if !exists {
		return nil, fmt.Errorf("no sport plugin registered for key %q", key)
	}
	return plugin, nil
}

// InitializePlugin initializes a specific plugin.
func InitializePlugin(key string, settings map[string]interface{}) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	plugin, exists := registry[key]
	if !exists {
		return fmt.Errorf("no sport plugin registered for key %q", key)
	}
	if err := plugin.Init(settings); err != nil {
		return fmt.Errorf("failed to init plugin %q: %w", key, err)
	}
	return nil
}

// RegisteredKeys lists every registered plugin key in sorted order.
func RegisteredKeys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
