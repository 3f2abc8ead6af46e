package domain

import "unicode/utf8"

type PronounItem struct {
	Pronoun   string `json:"pronoun"`
	Zh        string `json:"zh"`
	EnExample string `json:"en_example"`
	ZhExample string `json:"zh_example"`
}

type PronounSubGroup struct {
	Title  string        `json:"title"`
	Remark string        `json:"remark"`
	Items  []PronounItem `json:"items"`
}

type PronounCategory struct {
	ID          string            `json:"id"`
	NameZh      string            `json:"name_zh"`
	NameEn      string            `json:"name_en"`
	Description string            `json:"description"`
	Examples    string            `json:"examples"`
	SubGroups   []PronounSubGroup `json:"sub_groups"`
}

// Badge returns the first character of the Chinese category name, used as
// the card's placeholder icon.
func (c PronounCategory) Badge() string {
	r, size := utf8.DecodeRuneInString(c.NameZh)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}

// ItemCount returns the number of pronouns across all subgroups.
func (c PronounCategory) ItemCount() int {
	n := 0
	for _, sg := range c.SubGroups {
		n += len(sg.Items)
	}
	return n
}

// Clone returns a deep copy of c.
func (c PronounCategory) Clone() PronounCategory {
	out := c
	out.SubGroups = make([]PronounSubGroup, len(c.SubGroups))
	for i, sg := range c.SubGroups {
		out.SubGroups[i] = sg
		out.SubGroups[i].Items = append([]PronounItem(nil), sg.Items...)
	}
	return out
}
