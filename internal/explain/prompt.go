package explain

import "fmt"

const systemPrompt = `Tu es un professeur de russe bienveillant pour des francophones débutants. Réponds uniquement en français, en texte brut, sans Markdown.`

func buildUserMessage(word, topic string) string {
	return fmt.Sprintf("Explique brièvement le mot russe %q (contexte: %s) en français. "+
		"Donne une astuce mnémotechnique pour s'en souvenir et une petite précision sur la grammaire si nécessaire. "+
		"Format court.", word, topic)
}
