package i18n

import "fmt"

// Lang is a supported interface language
type Lang string

const (
	UZ Lang = "uz"
	RU Lang = "ru"
)

// Langs lists every supported language
var Langs = []Lang{UZ, RU}

// Normalize maps an arbitrary language code to a supported language,
// falling back to uz.
func Normalize(code string) Lang {
	switch Lang(code) {
	case UZ, RU:
		return Lang(code)
	}
	return UZ
}

// Key identifies one message in the text table
type Key int

const (
	Start Key = iota
	University
	Year
	FullName
	Phone
	Video
	Done
	InvalidVideo
	TooLarge
	Downloading
	DownloadError
	SomethingWrong
	AdminsOnly
	BroadcastUsage
	NewParticipant

	keyCount // number of keys, must stay last
)

var texts = map[Key]map[Lang]string{
	Start: {
		UZ: "👋 Salom! Bu bot orqali World Savings Day tanlovida ishtirok etish uchun videomavzuni yuborishingiz mumkin. Iltimos, quyidagi bosqichlarni ketma-ket bajaring.\n\n👉 Tilni tanlang:",
		RU: "👋 Здравствуйте! С помощью этого бота вы можете отправить видеоролик для участия в конкурсе World Savings Day. Пожалуйста, выполните следующие шаги.\n\n👉 Выберите язык:",
	},
	University: {
		UZ: "🎓 Universitetni tanlang:",
		RU: "🎓 Выберите университет:",
	},
	Year: {
		UZ: "📚 Qaysi bosqichda o'qiysiz?",
		RU: "📚 На каком курсе вы учитесь?",
	},
	FullName: {
		UZ: "👤 To'liq ism-sharifingizni yozing (pasportdagidek):",
		RU: "👤 Напишите полное имя и фамилию (как в паспорте):",
	},
	Phone: {
		UZ: "📞 Telefon raqamingizni yozing:",
		RU: "📞 Напишите свой номер телефона:",
	},
	Video: {
		UZ: "🎥 Endi tanlov uchun videoni yuboring (MP4 formatda, sifatli bo'lsin):",
		RU: "🎥 Теперь отправьте видео для конкурса (в формате MP4, хорошего качества):",
	},
	Done: {
		UZ: "🎉 Barcha ma'lumotlaringiz va videongiz qabul qilindi. Rahmat!",
		RU: "🎉 Вся информация и ваше видео получены. Спасибо!",
	},
	InvalidVideo: {
		UZ: "❗ Iltimos, MP4 formatdagi video yuboring (fayl sifatida ham bo'lishi mumkin).",
		RU: "❗ Пожалуйста, отправьте видео в формате MP4 (можно как файл).",
	},
	TooLarge: {
		UZ: "❗ Fayl hajmi juda katta. Iltimos, 200 MB dan kichik video yuboring.",
		RU: "❗ Файл слишком большой. Отправьте видео размером до 200 МБ.",
	},
	Downloading: {
		UZ: "📥 Videongiz yuklanmoqda, biroz kuting...",
		RU: "📥 Ваше видео загружается, пожалуйста, подождите...",
	},
	DownloadError: {
		UZ: "⚠️ Videoni yuklab bo'lmadi. Iltimos, keyinroq urinib ko'ring.",
		RU: "⚠️ Не удалось загрузить видео. Попробуйте позже.",
	},
	SomethingWrong: {
		UZ: "⚠️ Xatolik yuz berdi. Iltimos, keyinroq urinib ko'ring.",
		RU: "⚠️ Произошла ошибка. Попробуйте позже.",
	},
	AdminsOnly: {
		UZ: "Adminlar uchun",
		RU: "Только для админов.",
	},
	BroadcastUsage: {
		UZ: "Foydalanish: /broadcast <matn>",
		RU: "Использование: /broadcast <текст>",
	},
	NewParticipant: {
		UZ: "🆕 Yangi ishtirokchi",
		RU: "🆕 Новый участник",
	},
}

// T returns the display string for key in lang. Unsupported languages
// fall back to uz. A key missing from the table is a programming error
// and panics.
func T(lang Lang, key Key) string {
	variants, ok := texts[key]
	if !ok {
		panic(fmt.Sprintf("i18n: no text registered for key %d", key))
	}
	text, ok := variants[Normalize(string(lang))]
	if !ok {
		panic(fmt.Sprintf("i18n: key %d has no %q variant", key, Normalize(string(lang))))
	}
	return text
}

// Both joins the uz and ru variants of key. Used before a user has
// picked a language and for operator-facing replies.
func Both(key Key) string {
	return T(UZ, key) + "\n\n" + T(RU, key)
}

// Inline joins the uz and ru variants of key on one line, for short
// replies like the operator refusal.
func Inline(key Key) string {
	return T(UZ, key) + " / " + T(RU, key)
}
