package content

import "github.com/gosuda/littleknowledge/internal/domain"

var initialRows = []domain.ClusterRow{
	{Cluster: "/kr/", Word: "crab", Phonetic: "/kræb/", Correct: "/kræb/", Wrong: "/kə-ræb/"},
	{Cluster: "/kr/", Word: "Christmas", Phonetic: "/ˈkrɪsməs/", Correct: "/krɪ-/", Wrong: "/kə-ri-/"},
	{Cluster: "/kw/", Word: "queen", Phonetic: "/kwiːn/", Correct: "/kwiːn/", Wrong: "/kə-wiːn/"},
	{Cluster: "/pl/", Word: "please", Phonetic: "/pliːz/", Correct: "/pliːz/", Wrong: "/pə-liːz/"},
	{Cluster: "/tr/", Word: "train", Phonetic: "/treɪn/", Correct: "/treɪn/", Wrong: "/tə-reɪn/"},
	{Cluster: "/gl/", Word: "glass", Phonetic: "/ɡlæs/", Correct: "/ɡlæs/", Wrong: "/ɡə-læs/"},
}

var finalRows = []domain.ClusterRow{
	{Cluster: "/st/", Word: "last", Phonetic: "/læst/", Correct: "/læst/", Wrong: "/læ-s-tə/"},
	{Cluster: "/nd/", Word: "hand", Phonetic: "/hænd/", Correct: "/hænd/", Wrong: "/hæ-n-də/"},
	{Cluster: "/mp/", Word: "lamp", Phonetic: "/læmp/", Correct: "/læmp/", Wrong: "/læ-m-pə/"},
	{Cluster: "/ŋk/", Word: "think", Phonetic: "/θɪŋk/", Correct: "/θɪŋk/", Wrong: "/θɪ-n-kə/"},
}

var memoryTips = []domain.Tip{
	{Icon: "📢", Title: "技巧 1", Description: "把连缀当成一个字母组合整体来记，不要试图一个一个拆开读。"},
	{Icon: "⚠️", Title: "技巧 2", Description: "避免在两个辅音之间人为加元音（这是非英语母语者常见错误）。"},
	{Icon: "🎙️", Title: "技巧 3", Description: "多练习这些连缀在真实单词里的发音。"},
}

var practiceSteps = []domain.PracticeStep{
	{Num: "1", Title: "慢速朗读 → 正常语速", Description: "先准确发音，再追求流利。"},
	{Num: "2", Title: "模仿跟读（shadowing）练习", Description: "模仿母语者的节奏。"},
	{Num: "3", Title: "多听多读", Description: "重点感知开头和结尾的辅音组合。"},
}
