// Package shadercache memoizes shader translations.
//
// A Cache is a sharded LRU keyed by a string digest. Each shard has its own
// lock and evicts its least recently used entry once it holds more than its
// share of the total capacity. Lookups with GetOrCreate run the create
// function at most once per key while the entry stays resident.
//
//	c := shadercache.New[Result](64)
//	r := c.GetOrCreate(key, func() Result { return translate(src) })
//
// A Cache is safe for concurrent use and must not be copied.
package shadercache
