package content

import "github.com/gosuda/littleknowledge/internal/domain"

var pronounCategories = []domain.PronounCategory{
	{
		ID:          "personal",
		NameZh:      "人称代词",
		NameEn:      "Personal Pronouns",
		Description: "用来指代人或事物，分为主格和宾格",
		Examples:    "I, you, he, she, it, we, they",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "主格人称代词",
				Remark: "作为句子的主语使用",
				Items: []domain.PronounItem{
					{Pronoun: "I", Zh: "我", EnExample: "I am a student.", ZhExample: "我是一名学生。"},
					{Pronoun: "You", Zh: "你/你们", EnExample: "You are very kind.", ZhExample: "你很友善。"},
					{Pronoun: "He", Zh: "他", EnExample: "He works in a bank.", ZhExample: "他在银行工作。"},
					{Pronoun: "She", Zh: "她", EnExample: "She likes reading books.", ZhExample: "她喜欢读书。"},
					{Pronoun: "It", Zh: "它", EnExample: "It is raining outside.", ZhExample: "外面正在下雨。"},
					{Pronoun: "We", Zh: "我们", EnExample: "We are going to the park.", ZhExample: "我们要去公园。"},
					{Pronoun: "They", Zh: "他们/她们/它们", EnExample: "They are my friends.", ZhExample: "他们是我的朋友。"},
				},
			},
			{
				Title:  "宾格人称代词",
				Remark: "作为动词或介词的宾语使用",
				Items: []domain.PronounItem{
					{Pronoun: "Me", Zh: "我", EnExample: "Please give it to me.", ZhExample: "请把它给我。"},
					{Pronoun: "You", Zh: "你/你们", EnExample: "I will help you with your homework.", ZhExample: "我会帮你做家庭作业。"},
					{Pronoun: "Him", Zh: "他", EnExample: "I saw him at the library yesterday.", ZhExample: "我昨天在图书馆看见了他。"},
					{Pronoun: "Her", Zh: "她", EnExample: "Can you tell her about the meeting?", ZhExample: "你能告诉她关于会议的事吗？"},
					{Pronoun: "It", Zh: "它", EnExample: "I bought a book and read it.", ZhExample: "我买了一本书并读了它。"},
					{Pronoun: "Us", Zh: "我们", EnExample: "The teacher asked us to be quiet.", ZhExample: "老师要求我们安静。"},
					{Pronoun: "Them", Zh: "他们/她们/它们", EnExample: "I invited them to my birthday party.", ZhExample: "我邀请他们参加我的生日派对。"},
				},
			},
		},
	},
	{
		ID:          "possessive",
		NameZh:      "物主代词",
		NameEn:      "Possessive Pronouns",
		Description: "表示所有关系的代词，分为形容词性和名词性",
		Examples:    "my, your, his, her, its, our, their, mine, yours, his, hers, ours, theirs",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "形容词性物主代词",
				Remark: "后面需接名词",
				Items: []domain.PronounItem{
					{Pronoun: "my", Zh: "我的", EnExample: "This is my book.", ZhExample: "这是我的书。"},
					{Pronoun: "your", Zh: "你的/你们的", EnExample: "Your room is clean.", ZhExample: "你的房间很干净。"},
					{Pronoun: "his", Zh: "他的", EnExample: "His car is new.", ZhExample: "他的车是新的。"},
					{Pronoun: "her", Zh: "她的", EnExample: "Her dress is beautiful.", ZhExample: "她的裙子很漂亮。"},
					{Pronoun: "its", Zh: "它的", EnExample: "The cat licked its paws.", ZhExample: "那只猫舔了它的爪子。"},
					{Pronoun: "our", Zh: "我们的", EnExample: "Our school is nearby.", ZhExample: "我们的学校就在附近。"},
					{Pronoun: "their", Zh: "他们/她们/它们的", EnExample: "Their ideas are creative.", ZhExample: "他们的想法很有创意。"},
				},
			},
			{
				Title:  "名词性物主代词",
				Remark: "可独立使用，不接名词",
				Items: []domain.PronounItem{
					{Pronoun: "mine", Zh: "我的", EnExample: "The red bag is mine.", ZhExample: "那个红色的包是我的。"},
					{Pronoun: "yours", Zh: "你的/你们的", EnExample: "Is this pen yours?", ZhExample: "这支笔是你的吗？"},
					{Pronoun: "his", Zh: "他的", EnExample: "That bicycle is his.", ZhExample: "那辆自行车是他的。"},
					{Pronoun: "hers", Zh: "她的", EnExample: "The decision was hers to make.", ZhExample: "决定由她来做。"},
					{Pronoun: "ours", Zh: "我们的", EnExample: "The victory is ours!", ZhExample: "胜利属于我们！"},
					{Pronoun: "theirs", Zh: "他们/她们/它们的", EnExample: "This house is theirs.", ZhExample: "这栋房子是他们的。"},
				},
			},
		},
	},
	{
		ID:          "reflexive",
		NameZh:      "反身代词",
		NameEn:      "Reflexive Pronouns",
		Description: `表示"自己"的意思，用作宾语或同位语`,
		Examples:    "myself, yourself, himself, herself, itself, ourselves, yourselves, themselves",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "反身代词",
				Remark: "用于强调或指代主语自己",
				Items: []domain.PronounItem{
					{Pronoun: "myself", Zh: "我自己", EnExample: "I made it myself.", ZhExample: "我自己做的。"},
					{Pronoun: "yourself", Zh: "你自己", EnExample: "Please help yourself.", ZhExample: "请随便吃。"},
					{Pronoun: "himself", Zh: "他自己", EnExample: "He blamed himself for the mistake.", ZhExample: "他因这个错误责怪自己。"},
					{Pronoun: "herself", Zh: "她自己", EnExample: "She introduced herself.", ZhExample: "她做了自我介绍。"},
					{Pronoun: "itself", Zh: "它自己", EnExample: "The door shut itself.", ZhExample: "门自己关上了。"},
					{Pronoun: "ourselves", Zh: "我们自己", EnExample: "We prepared ourselves for the trip.", ZhExample: "我们为旅行做了准备。"},
					{Pronoun: "yourselves", Zh: "你们自己", EnExample: "Please make yourselves comfortable.", ZhExample: "请大家随意。"},
					{Pronoun: "themselves", Zh: "他们自己", EnExample: "They built the house themselves.", ZhExample: "他们自己建造了这座房子。"},
				},
			},
		},
	},
	{
		ID:          "demonstrative",
		NameZh:      "指示代词",
		NameEn:      "Demonstrative Pronouns",
		Description: `用来指示人或事物，表示"这个"或"那个"`,
		Examples:    "this, that, these, those, such",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "指示代词",
				Remark: "根据所指对象的远近和单复数形式变化",
				Items: []domain.PronounItem{
					{Pronoun: "this", Zh: "这个", EnExample: "This is my friend.", ZhExample: "这是我的朋友。"},
					{Pronoun: "that", Zh: "那个", EnExample: "That is a tall building.", ZhExample: "那是一栋高楼。"},
					{Pronoun: "these", Zh: "这些", EnExample: "These are delicious.", ZhExample: "这些很好吃。"},
					{Pronoun: "those", Zh: "那些", EnExample: "Those were the days.", ZhExample: "那些日子真美好。"},
					{Pronoun: "such", Zh: "如此/这样的", EnExample: "Such is life.", ZhExample: "生活就是如此。"},
				},
			},
		},
	},
	{
		ID:          "interrogative",
		NameZh:      "疑问代词",
		NameEn:      "Interrogative Pronouns",
		Description: "用于疑问句中，询问人或事物",
		Examples:    "who, whom, whose, which, what",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "疑问代词",
				Remark: "用来提出问题，指代未知的人或事物",
				Items: []domain.PronounItem{
					{Pronoun: "who", Zh: "谁", EnExample: "Who is there?", ZhExample: "谁在那里？"},
					{Pronoun: "whom", Zh: "谁(宾格)", EnExample: "Whom did you see?", ZhExample: "你看见了谁？"},
					{Pronoun: "whose", Zh: "谁的", EnExample: "Whose book is this?", ZhExample: "这是谁的书？"},
					{Pronoun: "which", Zh: "哪一个/哪些", EnExample: "Which is your car?", ZhExample: "哪辆是你的车？"},
					{Pronoun: "what", Zh: "什么", EnExample: "What is your name?", ZhExample: "你叫什么名字？"},
				},
			},
		},
	},
	{
		ID:          "indefinite",
		NameZh:      "不定代词",
		NameEn:      "Indefinite Pronouns",
		Description: "表示不确定的人或事物",
		Examples:    "some, any, no, every, each, all, both, either, neither, many, much, few, little",
		SubGroups: []domain.PronounSubGroup{
			{
				Title:  "常见不定代词",
				Remark: "根据数量和肯定/否定含义使用",
				Items: []domain.PronounItem{
					{Pronoun: "some", Zh: "一些", EnExample: "I have some questions.", ZhExample: "我有一些问题。"},
					{Pronoun: "any", Zh: "任何", EnExample: "Do you have any money?", ZhExample: "你有钱吗？"},
					{Pronoun: "both", Zh: "两个都", EnExample: "Both answers are correct.", ZhExample: "两个答案都正确。"},
					{Pronoun: "none", Zh: "没有一个", EnExample: "None of them arrived on time.", ZhExample: "他们没有一个准时到达。"},
					{Pronoun: "many", Zh: "许多", EnExample: "Many were invited, but few came.", ZhExample: "很多人受邀，但很少有人来。"},
					{Pronoun: "little", Zh: "很少", EnExample: "There is little water left.", ZhExample: "剩下的水很少。"},
				},
			},
		},
	},
}

var pronounHints = []string{
	"学习指代词时，注意它们在不同语境下的用法变化。",
	"人称代词的主格和宾格形式要区分清楚，避免混用。",
	"物主代词有形容词性和名词性两种形式，使用场景不同。",
	"反身代词通常用于强调或表示\u00a0\"自己\"\u00a0，不能作为主语使用。",
	"指示代词的单复数形式要与所指代的名词保持一致。",
	"通过大量阅读和练习来加深对指代词用法的理解和掌握。",
}
