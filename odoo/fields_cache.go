package odoo

import (
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// fieldsCache keeps fields_get replies. The description of a model only
// changes when a module is installed or upgraded on the server.
type fieldsCache struct {
	lru *expirable.LRU[string, map[string]interface{}]
}

func newFieldsCache(cfg FieldsCacheConfig) *fieldsCache {
	if !cfg.Enabled.Get() {
		return nil
	}
	size := cfg.Size
	if size <= 0 {
		size = 128
	}
	return &fieldsCache{
		lru: expirable.NewLRU[string, map[string]interface{}](size, nil, cfg.TTL.Get()),
	}
}

func fieldsCacheKey(model string, attributes []string) string {
	return model + "|" + strings.Join(attributes, ",")
}

func (c *fieldsCache) get(model string, attributes []string) (map[string]interface{}, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(fieldsCacheKey(model, attributes))
}

func (c *fieldsCache) add(model string, attributes []string, fields map[string]interface{}) {
	if c == nil {
		return
	}
	c.lru.Add(fieldsCacheKey(model, attributes), fields)
}

func (c *fieldsCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}
