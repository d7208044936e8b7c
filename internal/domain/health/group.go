package health

import (
	"fmt"
	"sort"
	"strings"

	"go-health/internal/domain/model"
)

// Wildcard is the member spec that expands to every registered check.
const Wildcard = "*"

// ShowDetails is a group's component-detail visibility policy.
type ShowDetails string

const (
	// ShowDetailsAlways exposes component details to every caller.
	ShowDetailsAlways ShowDetails = "ALWAYS"
	// ShowDetailsNever exposes the aggregate status only.
	ShowDetailsNever ShowDetails = "NEVER"
	// ShowDetailsWhenAuthorized exposes component details only to callers
	// carrying the authorization claim.
	ShowDetailsWhenAuthorized ShowDetails = "WHEN_AUTHORIZED"
)

// ParseShowDetails parses a policy from its configuration spelling.
// Matching is case-insensitive and accepts dashes for underscores, so
// "when-authorized" and "WHEN_AUTHORIZED" are the same policy.
func ParseShowDetails(value string) (ShowDetails, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))
	switch ShowDetails(normalized) {
	case ShowDetailsAlways, ShowDetailsNever, ShowDetailsWhenAuthorized:
		return ShowDetails(normalized), nil
	case "":
		return ShowDetailsNever, nil
	default:
		return "", fmt.Errorf("unknown show-details policy %q", value)
	}
}

// Visible resolves the policy for a caller.
func (p ShowDetails) Visible(caller model.Caller) bool {
	switch p {
	case ShowDetailsAlways:
		return true
	case ShowDetailsWhenAuthorized:
		return caller.Authorized
	default:
		return false
	}
}

// Group is a named, configured subset of checks exposed as one queryable
// endpoint with one visibility policy. Groups are built once at startup
// and immutable afterwards.
type Group struct {
	Name        string
	Members     []string
	ShowDetails ShowDetails
}

// IsWildcard reports whether the group includes every registered check.
func (g Group) IsWildcard() bool {
	return len(g.Members) == 1 && g.Members[0] == Wildcard
}

// Member pairs a resolved check with its registry name.
type Member struct {
	Name  string
	Check Check
}

// Groups maps group names to their configured membership and visibility,
// resolving members against the check registry at query time so a
// wildcard group always sees the current registry snapshot.
type Groups struct {
	registry *Registry
	groups   map[string]Group
}

// NewGroups builds the group table. Group names must be unique and every
// policy must be valid; both violations are startup misconfigurations.
func NewGroups(registry *Registry, groups ...Group) (*Groups, error) {
	table := make(map[string]Group, len(groups))
	for _, group := range groups {
		if group.Name == "" {
			return nil, fmt.Errorf("health group with empty name")
		}
		if _, exists := table[group.Name]; exists {
			return nil, fmt.Errorf("health group %q configured twice", group.Name)
		}
		if group.ShowDetails == "" {
			group.ShowDetails = ShowDetailsNever
		}
		table[group.Name] = group
	}
	return &Groups{registry: registry, groups: table}, nil
}

// Get returns the configuration of a group.
// Returns ErrGroupNotFound for unconfigured names.
func (gs *Groups) Get(name string) (Group, error) {
	group, exists := gs.groups[name]
	if !exists {
		return Group{}, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	return group, nil
}

// Names returns the configured group names in sorted order.
func (gs *Groups) Names() []string {
	names := make([]string, 0, len(gs.groups))
	for name := range gs.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve expands a group to its member checks, in stable name order.
// A wildcard group resolves to the full registry snapshot. A named member
// missing from the registry is a misconfiguration and fails resolution
// with ErrCheckNotFound rather than folding into a DOWN status.
func (gs *Groups) Resolve(name string) ([]Member, error) {
	group, err := gs.Get(name)
	if err != nil {
		return nil, err
	}

	if group.IsWildcard() {
		snapshot := gs.registry.All()
		names := make([]string, 0, len(snapshot))
		for checkName := range snapshot {
			names = append(names, checkName)
		}
		sort.Strings(names)

		members := make([]Member, 0, len(names))
		for _, checkName := range names {
			members = append(members, Member{Name: checkName, Check: snapshot[checkName]})
		}
		return members, nil
	}

	members := make([]Member, 0, len(group.Members))
	for _, checkName := range group.Members {
		check, err := gs.registry.Get(checkName)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		members = append(members, Member{Name: checkName, Check: check})
	}
	return members, nil
}

// ParseGroups builds group configurations from the raw properties map
// under the groups key. Each entry looks like:
//
//	readiness:
//	  include: "*"            # or a comma-separated list of check names
//	  show-details: always
//
// An empty include produces a group with no members, which always
// aggregates to UP (the recommended shape for liveness groups).
func ParseGroups(raw map[string]any) ([]Group, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		settings, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("health group %q: expected a settings map, got %T", name, raw[name])
		}

		include, _ := settings["include"].(string)
		policyValue, _ := settings["show-details"].(string)
		policy, err := ParseShowDetails(policyValue)
		if err != nil {
			return nil, fmt.Errorf("health group %q: %w", name, err)
		}

		groups = append(groups, Group{
			Name:        name,
			Members:     splitMembers(include),
			ShowDetails: policy,
		})
	}
	return groups, nil
}

func splitMembers(include string) []string {
	include = strings.TrimSpace(include)
	if include == "" {
		return nil
	}
	if include == Wildcard {
		return []string{Wildcard}
	}

	parts := strings.Split(include, ",")
	members := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			members = append(members, trimmed)
		}
	}
	return members
}
