package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Page shell
	message.SetString(lang, "title.home", "Crypto Seal")
	message.SetString(lang, "meta.description", "Seal text with a cryptographic hash and timestamp, then resolve it by hash.")
	message.SetString(lang, "header.contribute", "Contribute")
	message.SetString(lang, "header.language", "Language")
	message.SetString(lang, "footer.made_by", "made by")
	message.SetString(lang, "lang.en-US", "English")
	message.SetString(lang, "lang.tr-TR", "Türkçe")

	// Hero
	message.SetString(lang, "hero.word.simple", "Simple.")
	message.SetString(lang, "hero.word.secure", "Secure.")
	message.SetString(lang, "hero.word.fast", "Fast.")
	message.SetString(lang, "hero.description", "Create an undeniable timeline of truth. Seal your digital assets on the chain and verify their existence forever, backed by the mathematical certainty of cryptography.")

	// Seal bar
	message.SetString(lang, "sealbar.tab.seal", "Seal")
	message.SetString(lang, "sealbar.tab.resolve", "Resolve")
	message.SetString(lang, "sealbar.placeholder.seal", "Enter text to seal...")
	message.SetString(lang, "sealbar.placeholder.resolve", "Enter hash to resolve...")
	message.SetString(lang, "sealbar.submit", "Submit")
	message.SetString(lang, "sealbar.loading", "Working...")
	message.SetString(lang, "sealbar.clear", "Clear")
	message.SetString(lang, "sealbar.copy", "Copy hash")
	message.SetString(lang, "sealbar.copied", "Copied!")
	message.SetString(lang, "sealbar.qr.alt", "QR code of the sealed hash")
	message.SetString(lang, "sealbar.record.id", "Record")
	message.SetString(lang, "sealbar.record.hash", "Hash")
	message.SetString(lang, "sealbar.record.sealed_at", "Sealed at")
	message.SetString(lang, "sealbar.error.connection", "connection error")
	message.SetString(lang, "sealbar.error.not_found", "No record found for this hash")
	message.SetString(lang, "sealbar.error.rate_limited", "Too many requests. Try again shortly.")
	message.SetString(lang, "sealbar.error.unexpected", "The seal service sent an unexpected response.")

	// Recent seals
	message.SetString(lang, "records.heading", "Recent seals")
	message.SetString(lang, "records.count", "%d sealed")
	message.SetString(lang, "records.empty", "Nothing has been sealed yet.")
	message.SetString(lang, "records.unavailable", "Recent seals are unavailable right now.")
	message.SetString(lang, "records.stale", "Showing cached results.")

	// Errors
	message.SetString(lang, "error.title.not_found", "Page not found")
	message.SetString(lang, "error.title.server", "Something went wrong")
	message.SetString(lang, "error.body.not_found", "The page you asked for does not exist.")
	message.SetString(lang, "error.body.server", "The request could not be completed. Please try again.")
	message.SetString(lang, "error.home", "Back to home")
}
