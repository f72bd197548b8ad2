package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("tr-TR")

	// Page shell
	message.SetString(lang, "title.home", "Crypto Seal")
	message.SetString(lang, "meta.description", "Metni kriptografik özet ve zaman damgasıyla mühürleyin, ardından özetle bulun.")
	message.SetString(lang, "header.contribute", "Katkıda bulun")
	message.SetString(lang, "header.language", "Dil")
	message.SetString(lang, "footer.made_by", "yapan")
	message.SetString(lang, "lang.en-US", "English")
	message.SetString(lang, "lang.tr-TR", "Türkçe")

	// Hero
	message.SetString(lang, "hero.word.simple", "Basit.")
	message.SetString(lang, "hero.word.secure", "Güvenli.")
	message.SetString(lang, "hero.word.fast", "Hızlı.")
	message.SetString(lang, "hero.description", "İnkâr edilemez bir gerçeklik zaman çizelgesi oluşturun. Dijital varlıklarınızı zincire mühürleyin ve kriptografinin matematiksel kesinliğiyle varlıklarını sonsuza dek doğrulayın.")

	// Seal bar
	message.SetString(lang, "sealbar.tab.seal", "Mühürle")
	message.SetString(lang, "sealbar.tab.resolve", "Bul")
	message.SetString(lang, "sealbar.placeholder.seal", "Mühürlenecek metni girin...")
	message.SetString(lang, "sealbar.placeholder.resolve", "Bulunacak özeti girin...")
	message.SetString(lang, "sealbar.submit", "Gönder")
	message.SetString(lang, "sealbar.loading", "İşleniyor...")
	message.SetString(lang, "sealbar.clear", "Temizle")
	message.SetString(lang, "sealbar.copy", "Özeti kopyala")
	message.SetString(lang, "sealbar.copied", "Kopyalandı!")
	message.SetString(lang, "sealbar.qr.alt", "Mühürlenen özetin QR kodu")
	message.SetString(lang, "sealbar.record.id", "Kayıt")
	message.SetString(lang, "sealbar.record.hash", "Özet")
	message.SetString(lang, "sealbar.record.sealed_at", "Mühür zamanı")
	message.SetString(lang, "sealbar.error.connection", "bağlantı hatası")
	message.SetString(lang, "sealbar.error.not_found", "Bu özet için kayıt bulunamadı")
	message.SetString(lang, "sealbar.error.rate_limited", "Çok fazla istek. Biraz sonra tekrar deneyin.")
	message.SetString(lang, "sealbar.error.unexpected", "Mühür servisi beklenmeyen bir yanıt gönderdi.")

	// Recent seals
	message.SetString(lang, "records.heading", "Son mühürler")
	message.SetString(lang, "records.count", "%d mühür")
	message.SetString(lang, "records.empty", "Henüz hiçbir şey mühürlenmedi.")
	message.SetString(lang, "records.unavailable", "Son mühürler şu anda gösterilemiyor.")
	message.SetString(lang, "records.stale", "Önbellekteki sonuçlar gösteriliyor.")

	// Errors
	message.SetString(lang, "error.title.not_found", "Sayfa bulunamadı")
	message.SetString(lang, "error.title.server", "Bir şeyler ters gitti")
	message.SetString(lang, "error.body.not_found", "İstediğiniz sayfa mevcut değil.")
	message.SetString(lang, "error.body.server", "İstek tamamlanamadı. Lütfen tekrar deneyin.")
	message.SetString(lang, "error.home", "Ana sayfaya dön")
}
