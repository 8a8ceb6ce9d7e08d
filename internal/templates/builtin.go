package templates

import "cardtext/internal/domain"

// Builtin returns the catalog shipped with the service. Each call returns a
// fresh copy so callers cannot alias the shared data.
func Builtin() *Catalog {
	return &Catalog{
		Categories: map[domain.Category]Pools{
			domain.CategoryMorning: {
				Greetings: []string{
					"Good morning, beautiful soul! 🌅",
					"Rise and shine, dear one! ✨",
					"Blessed morning to you! 🌸",
					"Welcome to a new day of possibilities! 🌟",
					"Good morning, may your day be filled with light! ☀️",
				},
				Affirmations: []string{
					"Today is a gift, embrace it with gratitude.",
					"You are capable of amazing things.",
					"Your presence makes the world brighter.",
					"Every breath is a new beginning.",
					"You are stronger than you know.",
				},
				Blessings: []string{
					"May your day be filled with joy and peace.",
					"May you find beauty in every moment.",
					"May your heart be light and your spirit free.",
					"May you spread love wherever you go.",
					"May today bring you closer to your dreams.",
				},
				Quotes: []string{
					"The sun is new each day. - Heraclitus",
					"Every morning is a chance to be reborn. - Unknown",
					"Morning is the best time to be grateful. - Unknown",
					"Wake up with determination, go to bed with satisfaction. - Unknown",
				},
				Enhancements: []string{
					"Embrace the new day with courage and hope.",
					"Let your light shine brightly today.",
					"You are capable of creating miracles.",
					"Today holds infinite possibilities for you.",
				},
			},
			domain.CategoryNight: {
				Greetings: []string{
					"Good night, sweet dreams! 🌙",
					"Rest well, beautiful soul! ✨",
					"Peaceful night to you! 🌟",
					"May your sleep be deep and healing! 💫",
					"Good night, may angels watch over you! 👼",
				},
				Reflections: []string{
					"Reflect on the blessings of today.",
					"Let go of what no longer serves you.",
					"Tomorrow is a new opportunity.",
					"You've done your best today.",
					"Rest is essential for growth.",
				},
				Prayers: []string{
					"May your dreams be peaceful and healing.",
					"May you wake up refreshed and renewed.",
					"May your heart find rest and comfort.",
					"May tomorrow bring new possibilities.",
					"May you sleep in divine protection.",
				},
				Quotes: []string{
					"Sleep is the best meditation. - Dalai Lama",
					"The night is the hardest time to be alive. - Unknown",
					"Sleep is the golden chain that ties health and our bodies together. - Thomas Dekker",
				},
				Enhancements: []string{
					"Release all worries and embrace peace.",
					"Tomorrow is a blank canvas waiting for your masterpiece.",
					"Rest is sacred and you deserve it.",
					"Your dreams are messages from your soul.",
				},
			},
			domain.CategoryLove: {
				Greetings: []string{
					"With love in my heart for you! 💖",
					"Sending you love and light! ✨",
					"You are loved beyond measure! 💕",
					"My heart beats for you! 💓",
					"Love surrounds you always! 💝",
				},
				Expressions: []string{
					"Your love makes my world complete.",
					"Every moment with you is a blessing.",
					"You are my heart's greatest treasure.",
					"Love is the answer to everything.",
					"You make my soul sing with joy.",
				},
				Promises: []string{
					"I promise to love you more each day.",
					"My love for you grows stronger with time.",
					"You are my forever and always.",
					"Together we are unstoppable.",
					"Our love story is just beginning.",
				},
				Quotes: []string{
					"Love is patient, love is kind. - 1 Corinthians 13:4",
					"The best thing to hold onto in life is each other. - Audrey Hepburn",
					"Love is composed of a single soul inhabiting two bodies. - Aristotle",
				},
				Enhancements: []string{
					"Love is the most powerful force in the universe.",
					"Your love makes the world a better place.",
					"Together we are stronger than apart.",
					"Love grows when shared freely.",
				},
			},
			domain.CategorySpiritual: {
				Greetings: []string{
					"Blessings of light upon you! ✨",
					"May divine love surround you! 🙏",
					"Peace be with you, dear soul! 🌟",
					"You are a child of the universe! 💫",
					"Divine light flows through you! 🌸",
				},
				Wisdom: []string{
					"You are a spiritual being having a human experience.",
					"Your soul knows the way home.",
					"Trust the journey of your spirit.",
					"You are connected to all that is.",
					"Your light shines brighter than you know.",
				},
				Meditations: []string{
					"Breathe in peace, exhale love.",
					"You are one with the divine source.",
					"Your spirit is eternal and free.",
					"Trust in the wisdom of your heart.",
					"You are guided by divine light.",
				},
				Quotes: []string{
					"The soul always knows what to do to heal itself. - Caroline Myss",
					"We are not human beings having a spiritual experience. We are spiritual beings having a human experience. - Pierre Teilhard de Chardin",
					"Your task is not to seek for love, but merely to seek and find all the barriers within yourself that you have built against it. - Rumi",
				},
				Enhancements: []string{
					"You are a divine spark of the infinite.",
					"Your soul journey is perfectly unfolding.",
					"Trust in the divine timing of your life.",
					"You are surrounded by loving guidance.",
				},
			},
		},
		Fallbacks: map[domain.Category][]string{
			domain.CategoryMorning: {
				"As the sun rises, may your spirit awaken to new possibilities and endless opportunities. Good morning, beautiful soul! 🌅",
				"With each dawn comes a fresh start. May your day be filled with love, light, and divine blessings. Good morning! ✨",
				"The morning sun whispers secrets of hope and renewal. Embrace this new day with gratitude and joy. Good morning! 🌟",
			},
			domain.CategoryNight: {
				"As the stars twinkle above, may your dreams be filled with peace and your heart with tranquility. Good night, sweet soul! 🌙",
				"Let the gentle night embrace you with its calming presence. Rest well and awaken refreshed. Good night! ✨",
				"May the moonlight guide you to peaceful dreams and restorative sleep. Good night, beautiful spirit! 🌟",
			},
			domain.CategoryLove: {
				"Love is the most powerful force in the universe. May your heart overflow with love and compassion. 💖",
				"You are surrounded by infinite love. Open your heart and let it flow freely to all beings. Love and light! ✨",
				"Every breath you take is a gift of love from the universe. Share this love with everyone you meet. 💫",
			},
			domain.CategorySpiritual: {
				"You are a divine being of light, connected to all that is. Remember your true nature and shine your light. ✨",
				"The universe conspires in your favor. Trust the journey and embrace the magic of your existence. 🌟",
				"Your soul knows the way. Listen to its whispers and follow the path of your highest good. 💫",
			},
		},
	}
}
