package i18n

import "strings"

const DefaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		"messages.recordSaved":          "Record saved successfully.",
		"messages.updateSuccess":        "Record updated successfully.",
		"messages.deleteSuccess":        "Record deleted successfully.",
		"messages.inviteEmailSuccess":   "Invitation email sent successfully.",
		"messages.welcomeEmailSent":     "Welcome email sent successfully.",
		"messages.selectAction":         "Please select an action.",
		"messages.slackRedirectMessage": "Please click on the link below to redirect to your workspace.",

		"validation.required":         "This field is required.",
		"validation.positiveInteger":  "This field must be a positive integer.",
		"validation.invalidStatus":    "The selected status is invalid.",
		"validation.reasonRequired":   "A reason is required when rejecting.",
		"validation.clientHasNoEmail": "The selected client has no email address.",
		"validation.emailTaken":       "This email is already taken.",
		"validation.invalidEmail":     "The email address is invalid.",
		"validation.passwordTooShort": "The password must be at least 8 characters.",
		"validation.invalidRole":      "The selected role is invalid.",
		"validation.invalidClient":    "The selected client is invalid.",

		"email.newUser.subject":       "Welcome to",
		"email.newUser.text":          "Your account has been created. Use the credentials below to sign in.",
		"email.newUser.action":        "Login to Dashboard",
		"app.email":                   "Email",
		"app.password":                "Password",
		"superadmin.previousPassword": "Your previous password",

		"email.estimateRequestInvite.subject": "You are invited to request an estimate",
		"email.estimateRequestInvite.text":    "We would be glad to prepare an estimate for you. Tell us what you need.",
		"email.estimateRequestInvite.action":  "Request an Estimate",

		"email.hello":   "Hello",
		"email.regards": "Regards",
	},
	"fr": {
		"messages.recordSaved":          "Enregistrement réussi.",
		"messages.updateSuccess":        "Mise à jour réussie.",
		"messages.deleteSuccess":        "Suppression réussie.",
		"messages.inviteEmailSuccess":   "Invitation envoyée avec succès.",
		"messages.welcomeEmailSent":     "E-mail de bienvenue envoyé avec succès.",
		"messages.selectAction":         "Veuillez sélectionner une action.",
		"messages.slackRedirectMessage": "Cliquez sur le lien ci-dessous pour accéder à votre espace de travail.",

		"validation.required":         "Ce champ est obligatoire.",
		"validation.positiveInteger":  "Ce champ doit être un entier positif.",
		"validation.invalidStatus":    "Le statut sélectionné est invalide.",
		"validation.reasonRequired":   "Une raison est requise pour un refus.",
		"validation.clientHasNoEmail": "Le client sélectionné n'a pas d'adresse email.",
		"validation.emailTaken":       "Cet email est déjà utilisé.",
		"validation.invalidEmail":     "L'adresse email est invalide.",
		"validation.passwordTooShort": "Le mot de passe doit contenir au moins 8 caractères.",
		"validation.invalidRole":      "Le rôle sélectionné est invalide.",
		"validation.invalidClient":    "Le client sélectionné est invalide.",

		"email.newUser.subject":       "Bienvenue sur",
		"email.newUser.text":          "Votre compte a été créé. Utilisez les identifiants ci-dessous pour vous connecter.",
		"email.newUser.action":        "Accéder au tableau de bord",
		"app.email":                   "Email",
		"app.password":                "Mot de passe",
		"superadmin.previousPassword": "Votre mot de passe précédent",

		"email.estimateRequestInvite.subject": "Vous êtes invité à demander un devis",
		"email.estimateRequestInvite.text":    "Nous serions ravis de préparer un devis pour vous. Dites-nous ce dont vous avez besoin.",
		"email.estimateRequestInvite.action":  "Demander un devis",

		"email.hello":   "Bonjour",
		"email.regards": "Cordialement",
	},
}

// Normalize maps a locale such as "fr-FR" to a supported language.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := translations[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// T returns the translation of code, falling back to the default language
// and then to the code itself.
func T(lang, code string) string {
	if msg, ok := translations[Normalize(lang)][code]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][code]; ok {
		return msg
	}
	return code
}
