package debugui

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// FieldInfo describes one exported field shown by the state inspector.
type FieldInfo struct {
	Name    string
	Index   int
	IsSlice bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:    field.Name,
				Index:   i,
				IsSlice: field.Type.Kind() == reflect.Slice,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

var durationType = reflect.TypeOf(time.Duration(0))

// formatValue renders a field value on one line.
func formatValue(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}
	if val.Type() == durationType {
		return time.Duration(val.Int()).String()
	}
	if s, ok := val.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.String:
		return fmt.Sprintf("%q", val.String())
	}
	return fmt.Sprintf("%v", val.Interface())
}
