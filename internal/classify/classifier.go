package classify

import (
	"strings"

	"retailedge/domain/retail"
	"retailedge/internal/resolver"
)

// Merchandising tag labels.
const (
	TagStarExpand  = "Star / Expand"
	TagUnderReview = "Under Review / Kill or Fix"
	TagMaintain    = "Maintain"
)

// Margin thresholds for the tag rules, in percent. Policy values agreed
// with the merchandising team, not derived from data.
const (
	HighMarginThreshold = 35.0
	LowMarginThreshold  = 15.0
)

// TagRule is one row of the merchandising rule table. A nil bound is
// unconstrained; an empty class list matches any ABC class. Rules are
// evaluated top to bottom and the first match wins.
type TagRule struct {
	Tag       string
	MinMargin *float64
	MaxMargin *float64
	Classes   []retail.ABCClass
}

func ptr(v float64) *float64 { return &v }

// DefaultTagRules is the standard rule table. The last rule is a
// catch-all, so classification can never come up empty.
var DefaultTagRules = []TagRule{
	{Tag: TagStarExpand, MinMargin: ptr(HighMarginThreshold), Classes: []retail.ABCClass{retail.ClassA}},
	{Tag: TagUnderReview, MaxMargin: ptr(LowMarginThreshold), Classes: []retail.ABCClass{retail.ClassC}},
	{Tag: TagMaintain},
}

func (r TagRule) matches(margin float64, class retail.ABCClass) bool {
	if r.MinMargin != nil && margin <= *r.MinMargin {
		return false
	}
	if r.MaxMargin != nil && margin >= *r.MaxMargin {
		return false
	}
	if len(r.Classes) == 0 {
		return true
	}
	for _, c := range r.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ElasticityRule maps category/description keyword substrings to a
// suggested price elasticity. This is a heuristic knowledge table (not a
// fitted statistic): necessity goods are less price-sensitive than
// discretionary and impulse goods. Keywords are in normalized header form.
type ElasticityRule struct {
	Keywords   []string
	Elasticity float64
}

// DefaultElasticity is the fallback when no keyword rule applies.
const DefaultElasticity = -1.8

// DefaultElasticityRules is evaluated top to bottom, first match wins.
var DefaultElasticityRules = []ElasticityRule{
	{Keywords: []string{"baby", "diaper", "nappy", "infant", "βρεφ"}, Elasticity: -0.6},
	{Keywords: []string{"milk", "bread", "staple", "grocery", "γαλα", "ψωμι"}, Elasticity: -0.9},
	{Keywords: []string{"snack", "chips", "crisps", "chocolate", "candy", "impulse", "σνακ"}, Elasticity: -3.2},
	{Keywords: []string{"beverage", "softdrink", "soda", "juice", "αναψυκτικ"}, Elasticity: -2.4},
}

// Classifier assigns merchandising tags and suggested elasticities to
// derived rows using the configured rule tables.
type Classifier struct {
	tagRules        []TagRule
	elasticityRules []ElasticityRule
}

// NewClassifier creates a classifier with the default policy tables.
func NewClassifier() *Classifier {
	return &Classifier{
		tagRules:        DefaultTagRules,
		elasticityRules: DefaultElasticityRules,
	}
}

// NewClassifierWithRules creates a classifier with custom rule tables.
func NewClassifierWithRules(tagRules []TagRule, elasticityRules []ElasticityRule) *Classifier {
	return &Classifier{tagRules: tagRules, elasticityRules: elasticityRules}
}

// Apply fills in the recommendation and elasticity of every row in place.
func (c *Classifier) Apply(rows []retail.DerivedRow) {
	for i := range rows {
		rows[i].Recommendation = c.Recommend(rows[i].GMPercent, rows[i].ABC)
		rows[i].Elasticity = c.SuggestElasticity(rows[i].Category, rows[i].Description)
	}
}

// Recommend returns the merchandising tag for a margin/class pair. The
// rule table ends in a catch-all, so there is always a match.
func (c *Classifier) Recommend(margin float64, class retail.ABCClass) string {
	for _, rule := range c.tagRules {
		if rule.matches(margin, class) {
			return rule.Tag
		}
	}
	return TagMaintain
}

// SuggestElasticity looks up the elasticity heuristic by category and
// description keywords. Pure function of its inputs.
func (c *Classifier) SuggestElasticity(category, description string) float64 {
	haystack := resolver.NormalizeHeader(category + " " + description)
	for _, rule := range c.elasticityRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, keyword) {
				return rule.Elasticity
			}
		}
	}
	return DefaultElasticity
}
