// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
)

// ConfigFile is a flat, symbol-graph-independent view of a .config file:
// name/value pairs with no notion of type, visibility or dependency. It
// exists alongside the richer Kconfig/Symbol-driven LoadConfig/WriteConfig
// pair in config.go for exactly one reason: Reduce and Minimize compare and
// splice together large numbers of candidate configs purely as bags of
// strings, the way syzkaller's pkg/kconfig/config.go does, and paying the
// full parse/finalize/evaluate cost per candidate would defeat the point of
// those algorithms.
//
// Config names here never carry the CONFIG_ prefix, matching config.go and
// the rest of the package.
type ConfigFile struct {
	Configs []*ConfigEntry
	Map     map[string]*ConfigEntry

	comments []string
}

// ConfigEntry is one name/value line of a ConfigFile.
type ConfigEntry struct {
	Name  string
	Value string

	comments []string
}

// Sentinel values a ConfigEntry.Value may hold. ConfigNo is a distinctive
// token rather than the empty string so that code that accidentally treats
// an unset entry as a normal string value fails loudly, the same
// defensive choice pkg/kconfig/config.go makes.
const (
	ConfigYes = "y"
	ConfigMod = "m"
	ConfigNo  = "---===[[[is not set]]]===---"

	configFilePrefix = "CONFIG_"
)

// Value returns the entry's value, or ConfigNo if name isn't present.
func (cf *ConfigFile) Value(name string) string {
	e := cf.Map[name]
	if e == nil {
		return ConfigNo
	}
	return e.Value
}

// Set changes name's value, adding the entry if it isn't present yet.
func (cf *ConfigFile) Set(name, value string) {
	e := cf.Map[name]
	if e == nil {
		e = &ConfigEntry{Name: name}
		cf.Map[name] = e
		cf.Configs = append(cf.Configs, e)
	}
	e.Value = value
	e.comments = append(e.comments, cf.comments...)
	cf.comments = nil
}

// Unset sets name's value to ConfigNo if it's present.
func (cf *ConfigFile) Unset(name string) {
	if e := cf.Map[name]; e != nil {
		e.Value = ConfigNo
	}
}

// ModToYes promotes every Mod-valued entry to Yes.
func (cf *ConfigFile) ModToYes() {
	for _, e := range cf.Configs {
		if e.Value == ConfigMod {
			e.Value = ConfigYes
		}
	}
}

// ModToNo demotes every Mod-valued entry to ConfigNo.
func (cf *ConfigFile) ModToNo() {
	for _, e := range cf.Configs {
		if e.Value == ConfigMod {
			e.Value = ConfigNo
		}
	}
}

// Serialize renders the file back to .config text, preserving the comment
// lines each entry picked up while being parsed.
func (cf *ConfigFile) Serialize() []byte {
	var b bytes.Buffer
	for _, e := range cf.Configs {
		for _, c := range e.comments {
			fmt.Fprintf(&b, "%s\n", c)
		}
		if e.Value == ConfigNo {
			fmt.Fprintf(&b, "# %s%s is not set\n", configFilePrefix, e.Name)
		} else {
			fmt.Fprintf(&b, "%s%s=%s\n", configFilePrefix, e.Name, e.Value)
		}
	}
	for _, c := range cf.comments {
		fmt.Fprintf(&b, "%s\n", c)
	}
	return b.Bytes()
}

// ParseConfigFile reads and parses a .config file into the flat
// representation.
func ParseConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open .config file %v: %w", path, err)
	}
	return ParseConfigFileData(data, path)
}

// ParseConfigFileData parses .config content already in memory.
func ParseConfigFileData(data []byte, path string) (*ConfigFile, error) {
	cf := &ConfigFile{Map: make(map[string]*ConfigEntry)}
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		cf.parseLine(s.Text())
	}
	return cf, nil
}

// Clone returns a deep-enough copy: entries may be mutated independently of
// the original, which Reduce/Minimize rely on when building candidates.
func (cf *ConfigFile) Clone() *ConfigFile {
	cf1 := &ConfigFile{Map: make(map[string]*ConfigEntry), comments: cf.comments}
	for _, e := range cf.Configs {
		e1 := new(ConfigEntry)
		*e1 = *e
		cf1.Configs = append(cf1.Configs, e1)
		cf1.Map[e1.Name] = e1
	}
	return cf1
}

func (cf *ConfigFile) parseLine(text string) {
	if m := reConfigFileY.FindStringSubmatch(text); m != nil {
		cf.Set(m[1], m[2])
	} else if m := reConfigFileN.FindStringSubmatch(text); m != nil {
		cf.Set(m[1], ConfigNo)
	} else {
		cf.comments = append(cf.comments, text)
	}
}

var (
	reConfigFileY = regexp.MustCompile(`^` + configFilePrefix + `([A-Za-z0-9_]+)=(y|m|(?:-?[0-9]+)|(?:0x[0-9a-fA-F]+)|(?:".*?"))$`)
	reConfigFileN = regexp.MustCompile(`^# ` + configFilePrefix + `([A-Za-z0-9_]+) is not set$`)
)
