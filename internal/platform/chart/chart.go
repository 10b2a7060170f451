// Package chart reads a chart of accounts from a YAML document.
//
// The document is a list of accounts; children either reference their parent
// by code or are nested under it:
//
//	accounts:
//	  - code: "1"
//	    name: Assets
//	    class: A
//	    children:
//	      - code: "1000"
//	        name: Cash
//	  - code: "1431"
//	    name: Receivables
//	    class: A
//	    parent: "1"
//
// Nested children inherit the class of their parent unless they set one.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type document struct {
	Accounts []node `yaml:"accounts"`
}

type node struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Class    string `yaml:"class"`
	Parent   string `yaml:"parent"`
	Children []node `yaml:"children"`
}

// LoadFile reads the chart of accounts stored at path.
func LoadFile(path string) ([]domain.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart of accounts: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML chart of accounts into a flat list, parents before children.
func Decode(r io.Reader) ([]domain.Account, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse chart of accounts: %w", err)
	}

	var accounts []domain.Account
	for _, n := range doc.Accounts {
		var err error
		accounts, err = flatten(accounts, n, "", "")
		if err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func flatten(out []domain.Account, n node, parentCode string, parentClass domain.AccountClass) ([]domain.Account, error) {
	if n.Code == "" {
		return nil, fmt.Errorf("chart of accounts: account %q has no code", n.Name)
	}

	class := domain.AccountClass(n.Class)
	if class == "" {
		class = parentClass
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("chart of accounts: account %s has invalid class %q", n.Code, class)
	}

	if n.Parent != "" {
		if parentCode != "" && n.Parent != parentCode {
			return nil, fmt.Errorf("chart of accounts: account %s is nested under %s but declares parent %s", n.Code, parentCode, n.Parent)
		}
		parentCode = n.Parent
	}

	account := domain.Account{Code: n.Code, Name: n.Name, Class: class}
	if parentCode != "" {
		p := parentCode
		account.ParentCode = &p
	}
	out = append(out, account)

	for _, child := range n.Children {
		var err error
		out, err = flatten(out, child, n.Code, class)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
