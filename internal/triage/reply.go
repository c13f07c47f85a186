package triage

const productiveReplyTemplate = "Olá,\n\n" +
	"Obrigado pelo contato. Recebemos sua mensagem e iremos analisar. " +
	"Poderia, por favor, enviar mais detalhes (nº protocolo, anexos, prints) para verificarmos? " +
	"Retornaremos em até 2 dias úteis.\n\n" +
	"Atenciosamente,\nEquipe de Suporte"

const unproductiveReplyTemplate = "Olá,\n\n" +
	"Agradecemos a sua mensagem! Desejamos tudo de bom.\n\n" +
	"Atenciosamente."

// RuleReply returns the fixed reply template for a category. The original
// email content is intentionally not consulted; templates are static and
// byte-identical across calls.
func RuleReply(category Category) string {
	if category == CategoryProductive {
		return productiveReplyTemplate
	}
	return unproductiveReplyTemplate
}
