// Package report exports a Network as a serializable document, for
// downstream bug oracles and debugging that prefer structured data over
// DOT text, in a yaml-tagged reporting style.
package report

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/viant/solgraph/link"
	"github.com/viant/solgraph/network"
)

// Endpoint is the serializable form of a link.Endpoint.
type Endpoint struct {
	Variable string `yaml:"variable" json:"variable"`
	Kind     string `yaml:"kind,omitempty" json:"kind,omitempty"`
	VertexID string `yaml:"vertexId" json:"vertexId"`
}

// Link is the serializable form of one link.DataLink.
type Link struct {
	From  Endpoint `yaml:"from" json:"from"`
	To    Endpoint `yaml:"to" json:"to"`
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Push  string   `yaml:"push,omitempty" json:"push,omitempty"`
	Pop   string   `yaml:"pop,omitempty" json:"pop,omitempty"`
}

// Report is the serializable form of a whole Network.
type Report struct {
	ContractID  string   `yaml:"contractId" json:"contractId"`
	Links       []Link   `yaml:"links" json:"links"`
	Diagnostics []string `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

// From builds a Report from a built Network.
func From(net *network.Network) Report {
	links := net.Links()
	out := Report{ContractID: net.ContractID, Links: make([]Link, 0, len(links)), Diagnostics: net.Diagnostics()}
	for _, l := range links {
		out.Links = append(out.Links, fromLink(l))
	}
	return out
}

func fromLink(l link.DataLink) Link {
	rl := Link{
		From:  fromEndpoint(l.From),
		To:    fromEndpoint(l.To),
		Label: l.Label.Attributes,
	}
	switch l.Stack.Op {
	case link.Push:
		rl.Push = l.Stack.CallID
	case link.Pop:
		rl.Pop = l.Stack.CallID
	}
	return rl
}

func fromEndpoint(e link.Endpoint) Endpoint {
	return Endpoint{Variable: e.Variable.Attributes, Kind: e.Variable.Kind, VertexID: e.VertexID}
}

// YAML marshals the report.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// JSON marshals the report for consumers that prefer JSON over YAML.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
