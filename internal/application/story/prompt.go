// Package story 提供故事生成编排
package story

import "fmt"

// DefaultGenre 未识别类型的兜底类型
const DefaultGenre = "scifi"

// 类型 → 风格描述
var genrePrompts = map[string]string{
	"scifi":       "科幻风格，包含未来科技、太空探索、人工智能等元素",
	"cultivation": "修仙风格，包含修炼体系、灵气复苏、宗门争斗等元素",
	"apocalypse":  "末世风格，包含灾难求生、变异生物、资源匮乏等元素",
	"urban":       "都市风格，包含职场生活、情感纠葛、社会现实等元素",
	"mystery":     "悬疑风格，包含层层迷雾、惊人真相、紧张推理等元素",
	"fantasy":     "奇幻风格，包含魔法世界、异族生物、史诗冒险等元素",
	"wuxia":       "武侠风格，包含江湖恩怨、绝世武功、侠义精神等元素",
	"romance":     "浪漫风格，包含甜蜜爱情、情感纠葛、幸福结局等元素",
	"historical":  "历史风格，包含古代背景、真实历史人物、风云变幻等元素",
}

// 类型 → 展示名
var genreNames = map[string]string{
	"scifi":       "科幻",
	"cultivation": "修仙",
	"apocalypse":  "末世",
	"urban":       "都市",
	"mystery":     "悬疑",
	"fantasy":     "奇幻",
	"wuxia":       "武侠",
	"romance":     "浪漫",
	"historical":  "历史",
}

const systemPromptTemplate = `你是一位专业的小说作家，擅长创作各种类型的故事。
请根据用户提供的故事大纲，创作一篇%d字左右的%s小说。

风格要求：%s

注意事项：
1. 故事情节要完整，有开头、发展、高潮、结尾
2. 人物性格鲜明，有血有肉
3. 描写细腻生动，环境、人物、心理都要到位
4. 对话自然流畅，符合人物身份
5. 根据故事类型，使用相应的专业术语和氛围描写
6. 字数要接近目标字数%d字

请直接输出小说内容，不需要任何前缀或说明。`

// Prompts 生成调用所需的提示词对
type Prompts struct {
	System    string
	User      string
	GenreName string
}

// ResolveGenre 解析类型键，未识别时静默回退到科幻
func ResolveGenre(genre string) (stylePrompt, displayName string) {
	stylePrompt, ok := genrePrompts[genre]
	if !ok {
		stylePrompt = genrePrompts[DefaultGenre]
	}
	displayName, ok = genreNames[genre]
	if !ok {
		displayName = genreNames[DefaultGenre]
	}
	return stylePrompt, displayName
}

// BuildPrompts 根据类型、大纲和目标字数组装提示词对；永不失败
func BuildPrompts(genre, outline string, wordCount int) Prompts {
	stylePrompt, displayName := ResolveGenre(genre)

	return Prompts{
		System:    fmt.Sprintf(systemPromptTemplate, wordCount, displayName, stylePrompt, wordCount),
		User:      "故事大纲：" + outline,
		GenreName: displayName,
	}
}
