package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
	"github.com/omeyang/xaddr/pkg/addr/xprefixset"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// setView 是集合的 JSON 输出形式。
type setView struct {
	Prefixes    xprefixset.Set `json:"prefixes"`
	Count       int            `json:"count"`
	Fingerprint string         `json:"fingerprint"`
}

// prefixView 是 info 命令的输出。
type prefixView struct {
	Prefix  string `json:"prefix"`
	Kind    string `json:"kind"`
	Len     int    `json:"len"`
	Bits    int    `json:"bits"`
	First   string `json:"first"`
	Last    string `json:"last"`
	Mask    string `json:"mask"`
	Parent  string `json:"parent,omitempty"`
	Sibling string `json:"sibling,omitempty"`
}

func newSetView(s xprefixset.Set) setView {
	return setView{
		Prefixes:    s,
		Count:       s.Len(),
		Fingerprint: fmt.Sprintf("%016x", s.Fingerprint()),
	}
}

func newPrefixView(p xprefix.Prefix) prefixView {
	v := prefixView{
		Prefix: p.Masked().String(),
		Kind:   p.Kind().String(),
		Len:    p.Len(),
		Bits:   p.Bits(),
		First:  addrString(p.FirstAddr()),
		Last:   addrString(p.LastAddr()),
		Mask:   addrString(p.Mask()),
	}
	if parent, ok := p.Parent(); ok {
		v.Parent = parent.String()
	}
	if sib, ok := p.Sibling(); ok {
		v.Sibling = sib.String()
	}
	return v
}

// addrString 按地址宽度对应的文本形式输出字节序列，不带长度。
func addrString(b []byte) string {
	p, err := xprefix.New(b, len(b)*8)
	if err != nil {
		return ""
	}
	s, _, _ := strings.Cut(p.String(), "/")
	return s
}

func (e *env) printSet(s xprefixset.Set) error {
	if e.cfg.Output == outputJSON {
		return e.printJSON(newSetView(s))
	}
	for p := range s.All() {
		fmt.Fprintln(e.stdout, p)
	}
	return nil
}

func (e *env) printPrefix(p xprefix.Prefix) error {
	if e.cfg.Output == outputJSON {
		return e.printJSON(map[string]string{"prefix": p.String()})
	}
	fmt.Fprintln(e.stdout, p)
	return nil
}

func (e *env) printJSON(v any) error {
	enc := json.NewEncoder(e.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
