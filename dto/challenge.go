// file: dto/challenge.go
package dto

import "strings"

// ========== 请求 DTO ==========

type CreateLabReq struct {
	Slug    string `json:"slug"`
	LabType string `json:"lab_type"`
}

type CreateChallengeReq struct {
	Title       string `json:"title"`
	Category    string `json:"category"`   // web / crypto / forensics / osint / reverse
	Difficulty  string `json:"difficulty"` // easy / medium / hard
	Description string `json:"description"`
	Points      uint   `json:"points"`
	// Flag 可留空，后端自动生成
	Flag string        `json:"flag"`
	Lab  *CreateLabReq `json:"lab"`
}

// Normalize: 清洗输入并处理默认值
func (r *CreateChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.Description = strings.TrimSpace(r.Description)
	r.Flag = strings.TrimSpace(r.Flag)

	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	if r.Lab != nil {
		r.Lab.Slug = strings.ToLower(strings.TrimSpace(r.Lab.Slug))
		r.Lab.LabType = strings.ToLower(strings.TrimSpace(r.Lab.LabType))
	}
}

type SubmitFlagReq struct {
	Flag string `json:"flag"`
}

// ========== 响应 DTO ==========

type ResourceMini struct {
	ID       uint64 `json:"id"`
	FileName string `json:"file_name"`
	Size     uint64 `json:"size"`
	SHA256   string `json:"sha256,omitempty"`
}

type ChallengeItemResp struct {
	ID          uint32 `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Points      uint   `json:"points"`
	SolvedCount uint   `json:"solved_count"`
	Solved      bool   `json:"solved"`
	LabSlug     string `json:"lab_slug,omitempty"`
}

type ChallengeDetailResp struct {
	ID          uint32         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Difficulty  string         `json:"difficulty"`
	Description string         `json:"description"`
	Points      uint           `json:"points"`
	SolvedCount uint           `json:"solved_count"`
	Solved      bool           `json:"solved"`
	LabSlug     string         `json:"lab_slug,omitempty"`
	Resources   []ResourceMini `json:"resources"`
}
