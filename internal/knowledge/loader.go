// Package knowledge loads domain and role packs from a knowledge-base
// document and answers skill, tool and role membership queries against them.
//
// The document is free text (typically markdown) with embedded fenced blocks
// tagged json. Each block is either a domain pack or a role pack; anything
// else in the document is ignored.
package knowledge

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"skillmap/internal/logging"
)

const (
	fence = "```"
	// maxLineSize bounds a single document line. bufio.Scanner's default of
	// 64KiB is too small for minified pack blocks.
	maxLineSize = 1 << 20
)

// ParseStats counts what a parse saw.
type ParseStats struct {
	Blocks    int // json blocks closed
	Malformed int // blocks that failed to decode
	Discarded int // valid JSON carrying neither roleId nor domainId
	Overrides int // blocks that replaced an earlier pack with the same id
}

// Base is an immutable set of packs. The zero value and the result of every
// load failure is an empty Base, which answers every query with false or empty.
type Base struct {
	domains     map[string]DomainPack
	roles       map[string]RolePack
	domainOrder []string
	roleOrder   []string
	source      string
	stats       ParseStats
}

// Empty returns a Base with no packs.
func Empty() *Base {
	return &Base{
		domains: make(map[string]DomainPack),
		roles:   make(map[string]RolePack),
	}
}

// LoadFile parses the document at path. An empty path or an unreadable file
// yields an empty Base; the load never fails.
func LoadFile(path string) *Base {
	if path == "" {
		logging.KnowledgeDebug("No knowledge document configured")
		return Empty()
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Get(logging.CategoryKnowledge).Warn("Knowledge document not found: %s", path)
		} else {
			logging.Get(logging.CategoryKnowledge).Warn("Knowledge document unreadable: %s: %v", path, err)
		}
		return Empty()
	}
	defer f.Close()

	b := Parse(f)
	b.source = path
	logging.Knowledge("Loaded knowledge document %s (domains=%d roles=%d malformed=%d)",
		path, len(b.domains), len(b.roles), b.stats.Malformed)
	return b
}

// Parse scans a document line by line and collects the packs in its json
// fenced blocks. Later blocks with a repeated id replace earlier ones.
// Malformed blocks are skipped and scanning continues.
func Parse(r io.Reader) *Base {
	timer := logging.StartTimer(logging.CategoryKnowledge, "Parse")
	defer timer.Stop()

	b := Empty()

	const (
		outside = iota
		inJSON
		inOther
	)
	state := outside
	var buf strings.Builder
	lineNo, openedAt := 0, 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch state {
		case outside:
			if !strings.HasPrefix(trimmed, fence) {
				continue
			}
			info := trimmed[len(fence):]
			if strings.HasSuffix(info, fence) {
				// One-line block such as ```bash go test ./...```.
				continue
			}
			if strings.EqualFold(strings.TrimSpace(info), "json") {
				state = inJSON
				buf.Reset()
				openedAt = lineNo
			} else {
				state = inOther
			}

		case inJSON:
			if trimmed == fence {
				b.addBlock(buf.String(), openedAt)
				state = outside
				continue
			}
			buf.WriteString(line)
			buf.WriteByte('\n')

		case inOther:
			if trimmed == fence {
				state = outside
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logging.Get(logging.CategoryKnowledge).Warn("Knowledge document scan stopped at line %d: %v", lineNo, err)
	}
	if state == inJSON {
		logging.Get(logging.CategoryKnowledge).Warn("Unterminated json block opened at line %d dropped", openedAt)
	}
	return b
}

func (b *Base) addBlock(raw string, line int) {
	b.stats.Blocks++

	pack, err := decodePack([]byte(raw))
	if err != nil {
		b.stats.Malformed++
		logging.KnowledgeDebug("Skipping malformed json block at line %d: %v", line, err)
		return
	}

	switch p := pack.(type) {
	case RolePack:
		if _, exists := b.roles[p.RoleID]; exists {
			b.stats.Overrides++
		} else {
			b.roleOrder = append(b.roleOrder, p.RoleID)
		}
		b.roles[p.RoleID] = p
	case DomainPack:
		if _, exists := b.domains[p.DomainID]; exists {
			b.stats.Overrides++
		} else {
			b.domainOrder = append(b.domainOrder, p.DomainID)
		}
		b.domains[p.DomainID] = p
	default:
		b.stats.Discarded++
		logging.KnowledgeDebug("Discarding json block at line %d: no roleId or domainId", line)
	}
}

// Source returns the path the Base was loaded from, if any.
func (b *Base) Source() string { return b.source }

// Stats returns parse counters.
func (b *Base) Stats() ParseStats { return b.stats }

// DomainIDs returns domain pack ids in document order.
func (b *Base) DomainIDs() []string { return append([]string(nil), b.domainOrder...) }

// RoleIDs returns role pack ids in document order.
func (b *Base) RoleIDs() []string { return append([]string(nil), b.roleOrder...) }

// Domain returns the domain pack with id.
func (b *Base) Domain(id string) (DomainPack, bool) {
	p, ok := b.domains[id]
	return p, ok
}

// Role returns the role pack with id.
func (b *Base) Role(id string) (RolePack, bool) {
	p, ok := b.roles[id]
	return p, ok
}
