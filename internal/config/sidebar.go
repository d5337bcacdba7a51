package config

import "git.home.luguber.info/inful/apidocs/internal/foundation/normalization"

// SidebarOptions mirrors the openapi-docs plugin sidebarOptions block.
type SidebarOptions struct {
	GroupPathsBy       GroupPathsBy       `yaml:"group_paths_by"`
	CategoryLinkSource CategoryLinkSource `yaml:"category_link_source"`
	DefaultCategory    string             `yaml:"default_category,omitempty"`
	InfoPage           *bool              `yaml:"info_page,omitempty"`
}

// InfoPageEnabled reports whether the landing entry is emitted. Unset means enabled.
func (o SidebarOptions) InfoPageEnabled() bool {
	return o.InfoPage == nil || *o.InfoPage
}

// GroupPathsBy selects how operations are grouped into categories.
type GroupPathsBy string

// GroupPathsByTag groups operations by their first declared tag.
const GroupPathsByTag GroupPathsBy = "tag"

var groupPathsByNormalizer = normalization.NewNormalizer(map[string]GroupPathsBy{
	"tag":  GroupPathsByTag,
	"tags": GroupPathsByTag,
}, "")

// NormalizeGroupPathsBy returns the canonical strategy or "" when unknown.
func NormalizeGroupPathsBy(raw string) GroupPathsBy {
	return groupPathsByNormalizer.Normalize(raw)
}

// CategoryLinkSource selects the landing page attached to each category.
type CategoryLinkSource string

const (
	CategoryLinkSourceTag  CategoryLinkSource = "tag"
	CategoryLinkSourceNone CategoryLinkSource = "none"
)

var categoryLinkSourceNormalizer = normalization.NewNormalizer(map[string]CategoryLinkSource{
	"tag":  CategoryLinkSourceTag,
	"none": CategoryLinkSourceNone,
}, "")

// NormalizeCategoryLinkSource returns the canonical source or "" when unknown.
func NormalizeCategoryLinkSource(raw string) CategoryLinkSource {
	return categoryLinkSourceNormalizer.Normalize(raw)
}
