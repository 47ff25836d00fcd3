package hook

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

// ScriptExtension is the recognized hook script extension.
const ScriptExtension = ".tengo"

// TengoExecutor handles the execution of Tengo hook scripts.
type TengoExecutor struct {
	scripts map[Type]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[Type]string),
	}
}

// Execute runs the script registered for the hook type with the given context.
func (e *TengoExecutor) Execute(hookType Type, ctx Context) error {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	script, exists := e.scripts[hookType]
	if !exists {
		return nil // No script for this hook type
	}

	instance := tengo.NewScript([]byte(script))
	instance.SetImports(stdlib.GetModuleMap("fmt", "os", "text", "times"))

	_ = instance.Add("productID", ctx.ProductID)
	_ = instance.Add("tile", ctx.Tile)
	_ = instance.Add("destDir", ctx.DestDir)
	_ = instance.Add("downloaded", ctx.Downloaded)
	_ = instance.Add("skipped", ctx.Skipped)
	_ = instance.Add("failed", ctx.Failed)
	for k, v := range ctx.Vars {
		_ = instance.Add(k, v)
	}

	compiled, err := instance.Run()
	if err != nil {
		return errors.Wrapf(errors.ErrHookExecution, "%s: %v", hookType, err)
	}

	// A script reports failure by setting the err variable.
	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return errors.Wrap(errors.ErrHookScript, v.Error())
		case string:
			if v != "" {
				return errors.Wrap(errors.ErrHookScript, v)
			}
		}
	}

	return nil
}

// AddScript adds or updates a script for the specified hook type.
func (e *TengoExecutor) AddScript(hookType Type, script string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
}

// HasScript checks if a script is registered for the specified hook type.
func (e *TengoExecutor) HasScript(hookType Type) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, ok := e.scripts[hookType]
	return ok
}

// LoadDir registers every recognized script in dir; the file name (minus
// extension) selects the hook type. Unknown names and other files are
// skipped.
func (e *TengoExecutor) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ScriptExtension {
			continue
		}
		hookType := Type(strings.TrimSuffix(entry.Name(), ScriptExtension))
		if hookType != PostProduct && hookType != PostBatch {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(err, "failed to load hook %s", entry.Name())
		}
		e.AddScript(hookType, string(content))
	}
	return nil
}
