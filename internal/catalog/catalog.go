package catalog

import "strings"

// Topic is a top-level calculus category shown on the menu.
type Topic int

const (
	TopicNone Topic = iota
	TopicAlgebra
	TopicLimit
	TopicDerivative
	TopicIntegral

	topicCount
)

// SubTopic is one technique within a Topic. It is the unit the validator
// and the prompt builder key off of.
type SubTopic int

const (
	None SubTopic = iota
	SysAlgebra
	SysTrig
	LimAlgebra
	LimFinite
	LimInfinite
	LimTrig
	DerAlgebra
	DerTrig
	IntArea
	IntVolume

	subTopicCount
)

// subTopicInfo is the per-SubTopic static record. The parent topic lives
// here so that membership is fixed by construction.
type subTopicInfo struct {
	code  string
	label string
	topic Topic
}

var subTopics = [...]subTopicInfo{
	None:        {code: "NONE", label: "", topic: TopicNone},
	SysAlgebra:  {code: "SYS_ALGEBRA", label: "Aljabar & Persamaan", topic: TopicAlgebra},
	SysTrig:     {code: "SYS_TRIG", label: "Trigonometri Dasar", topic: TopicAlgebra},
	LimAlgebra:  {code: "LIM_ALGEBRA", label: "Limit Aljabar", topic: TopicLimit},
	LimFinite:   {code: "LIM_FINITE", label: "Limit Hingga", topic: TopicLimit},
	LimInfinite: {code: "LIM_INFINITE", label: "Limit Tak Hingga", topic: TopicLimit},
	LimTrig:     {code: "LIM_TRIG", label: "Limit Trigonometri", topic: TopicLimit},
	DerAlgebra:  {code: "DER_ALGEBRA", label: "Turunan Aljabar", topic: TopicDerivative},
	DerTrig:     {code: "DER_TRIG", label: "Turunan Trigonometri", topic: TopicDerivative},
	IntArea:     {code: "INT_AREA", label: "Integral Tentu (Luas)", topic: TopicIntegral},
	IntVolume:   {code: "INT_VOLUME", label: "Volume Benda Putar", topic: TopicIntegral},
}

// Adding a SubTopic without a row above breaks the build here.
var _ = [1]struct{}{}[len(subTopics)-int(subTopicCount)]

// Valid reports whether s is a known SubTopic.
func (s SubTopic) Valid() bool {
	return s >= None && s < subTopicCount
}

// Code returns the stable identifier, e.g. "LIM_TRIG".
func (s SubTopic) Code() string {
	if !s.Valid() {
		return "NONE"
	}
	return subTopics[s].code
}

// Label returns the display label.
func (s SubTopic) Label() string {
	if !s.Valid() {
		return ""
	}
	return subTopics[s].label
}

// Topic returns the parent topic.
func (s SubTopic) Topic() Topic {
	if !s.Valid() {
		return TopicNone
	}
	return subTopics[s].topic
}

func (s SubTopic) String() string { return s.Code() }

// Lookup resolves a stable code (case-insensitive) to its SubTopic.
func Lookup(code string) (SubTopic, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, info := range subTopics {
		if SubTopic(i) != None && info.code == code {
			return SubTopic(i), true
		}
	}
	return None, false
}

// SubTopics returns every selectable SubTopic in menu order.
func SubTopics() []SubTopic {
	out := make([]SubTopic, 0, int(subTopicCount)-1)
	for s := SysAlgebra; s < subTopicCount; s++ {
		out = append(out, s)
	}
	return out
}

// TopicInfo is the display record for a menu card.
type TopicInfo struct {
	ID          Topic      `yaml:"-"`
	Code        string     `yaml:"code"`
	Label       string     `yaml:"label"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"-"`
	SubTopics   []SubTopic `yaml:"-"`
}

var topics = [...]TopicInfo{
	TopicNone: {ID: TopicNone, Code: "NONE"},
	TopicAlgebra: {
		ID:          TopicAlgebra,
		Code:        "ALGEBRA",
		Label:       "1. Sistem Bilangan",
		Description: "Operasi dasar, himpunan penyelesaian, dan trigonometri dasar.",
		Icon:        "x² + y",
	},
	TopicLimit: {
		ID:          TopicLimit,
		Code:        "LIMIT",
		Label:       "2. Limit Fungsi",
		Description: "Pendekatan nilai fungsi menuju titik tertentu atau tak hingga.",
		Icon:        "lim x→c",
	},
	TopicDerivative: {
		ID:          TopicDerivative,
		Code:        "DERIVATIVE",
		Label:       "3. Turunan",
		Description: "Laju perubahan sesaat dan kemiringan garis singgung kurva.",
		Icon:        "d/dx",
	},
	TopicIntegral: {
		ID:          TopicIntegral,
		Code:        "INTEGRAL",
		Label:       "4. Integral",
		Description: "Akumulasi jumlah, luas daerah, dan volume benda putar.",
		Icon:        "∫ₐᵇ dx",
	},
}

var _ = [1]struct{}{}[len(topics)-int(topicCount)]

// Topics returns the selectable topics in display order, each carrying its
// ordered sub-topics.
func Topics() []TopicInfo {
	out := make([]TopicInfo, 0, int(topicCount)-1)
	for t := TopicAlgebra; t < topicCount; t++ {
		info := topics[t]
		for _, s := range SubTopics() {
			if s.Topic() == t {
				info.SubTopics = append(info.SubTopics, s)
			}
		}
		out = append(out, info)
	}
	return out
}

// Info returns the display record for t.
func (t Topic) Info() TopicInfo {
	for _, info := range Topics() {
		if info.ID == t {
			return info
		}
	}
	return topics[TopicNone]
}

func (t Topic) String() string {
	if t < TopicNone || t >= topicCount {
		return "NONE"
	}
	return topics[t].Code
}
