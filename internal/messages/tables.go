package messages

var english = map[string]string{
	"EMAIL_TOO_SHORT":            "Invalid format - the email address is too short",
	"EMAIL_MISSING_AT":           "Invalid format - the email address is missing an @",
	"EMAIL_MISSING_LOCAL":        "Invalid format - a user name is required before the @",
	"EMAIL_MULTIPLE_AT":          "Invalid format - the email address must have one part before and one after the @",
	"EMAIL_MISSING_DOMAIN":       "Invalid format - a domain name is required after the @",
	"EMAIL_INVALID_LOCAL_CHARS":  "Invalid format - the user name contains invalid characters",
	"EMAIL_CONSECUTIVE_DOTS":     "Invalid format - the domain contains consecutive dots",
	"EMAIL_INVALID_DOMAIN_EDGE":  "Invalid format - the domain cannot start or end with a dot, hyphen or space",
	"EMAIL_MISSING_TLD":          "Invalid format - the email address is missing an extension (for example: .com)",
	"EMAIL_INVALID_DOMAIN_LABEL": "Invalid format - the domain contains invalid characters",
	"EMAIL_TLD_TOO_SHORT":        "Invalid format - the email extension must be at least 2 characters",
	"EMAIL_VALID_FORMAT":         "Email format is valid",

	"EMAIL_NO_MX":                   "No mail server found for the domain",
	"EMAIL_NO_SPF":                  "The domain has no SPF record",
	"EMAIL_NO_DKIM":                 "The domain has no DKIM record",
	"EMAIL_SMTP_CONNECT_FAILED":     "Could not connect to the mail server",
	"EMAIL_SMTP_HELO_FAILED":        "The mail server refused the connection greeting",
	"EMAIL_SMTP_MAIL_FROM_REJECTED": "The mail server refused the verification sender",
	"EMAIL_SMTP_RCPT_REJECTED":      "The mailbox does not exist or does not accept mail",
	"EMAIL_SMTP_TIMEOUT":            "The mail server did not respond in time",
	"EMAIL_VALID":                   "Email address is valid",

	"PHONE_UNSUPPORTED_REGION": "Phone validation is not available for {region}",
	"PHONE_INVALID_FORMAT":     "Invalid format - a valid {region} phone number is required",
	"PHONE_VALID_FORMAT":       "Valid {region} phone number format",
	"PHONE_PARSE_FAILED":       "Phone number parsing failed",
	"PHONE_INVALID_NUMBER":     "Invalid {region} phone number",
	"PHONE_VALID":              "Phone number is valid",

	"REGION_IL": "Israel",
	"REGION_US": "United States",
	"REGION_CA": "Canada",
	"REGION_GB": "United Kingdom",
	"REGION_AU": "Australia",
	"REGION_FR": "France",
	"REGION_DE": "Germany",
	"REGION_IT": "Italy",
	"REGION_ES": "Spain",
	"REGION_JP": "Japan",
}

var hebrew = map[string]string{
	"EMAIL_TOO_SHORT":            "פורמט לא תקין - כתובת האימייל קצרה מדי",
	"EMAIL_MISSING_AT":           "פורמט לא תקין - חסר @ בכתובת האימייל",
	"EMAIL_MISSING_LOCAL":        "פורמט לא תקין - חסר שם משתמש לפני ה-@",
	"EMAIL_MULTIPLE_AT":          "פורמט לא תקין - כתובת האימייל חייבת להכיל חלק לפני ואחרי ה-@",
	"EMAIL_MISSING_DOMAIN":       "פורמט לא תקין - חסר שם דומיין אחרי ה-@",
	"EMAIL_INVALID_LOCAL_CHARS":  "פורמט לא תקין - שם המשתמש מכיל תווים לא חוקיים",
	"EMAIL_CONSECUTIVE_DOTS":     "פורמט לא תקין - הדומיין מכיל נקודות רצופות",
	"EMAIL_INVALID_DOMAIN_EDGE":  "פורמט לא תקין - כתובת האימייל לא יכולה להסתיים בנקודה",
	"EMAIL_MISSING_TLD":          "פורמט לא תקין - חסרה סיומת בכתובת האימייל (לדוגמה: .com)",
	"EMAIL_INVALID_DOMAIN_LABEL": "פורמט לא תקין - שם הדומיין מכיל תווים לא חוקיים",
	"EMAIL_TLD_TOO_SHORT":        "פורמט לא תקין - סיומת האימייל חייבת להכיל לפחות 2 תווים",
	"EMAIL_VALID_FORMAT":         "פורמט האימייל תקין",

	"EMAIL_NO_MX":                   "לא נמצא שרת דואר תקין עבור הדומיין",
	"EMAIL_NO_SPF":                  "לדומיין אין רשומת SPF",
	"EMAIL_NO_DKIM":                 "לדומיין אין רשומת DKIM",
	"EMAIL_SMTP_CONNECT_FAILED":     "החיבור לשרת הדואר נכשל",
	"EMAIL_SMTP_HELO_FAILED":        "שרת הדואר דחה את פתיחת החיבור",
	"EMAIL_SMTP_MAIL_FROM_REJECTED": "שרת הדואר דחה את כתובת השולח לבדיקה",
	"EMAIL_SMTP_RCPT_REJECTED":      "תיבת הדואר אינה קיימת או אינה מקבלת דואר",
	"EMAIL_SMTP_TIMEOUT":            "שרת הדואר לא הגיב בזמן",
	"EMAIL_VALID":                   "כתובת האימייל תקינה",

	"PHONE_UNSUPPORTED_REGION": "בדיקת טלפון אינה זמינה עבור {region}",
	"PHONE_INVALID_FORMAT":     "פורמט לא תקין - נדרש מספר טלפון תקין ב{region}",
	"PHONE_VALID_FORMAT":       "פורמט מספר הטלפון תקין ({region})",
	"PHONE_PARSE_FAILED":       "שגיאה בבדיקת מספר הטלפון",
	"PHONE_INVALID_NUMBER":     "מספר טלפון לא תקין ({region})",
	"PHONE_VALID":              "מספר הטלפון תקין",

	"REGION_IL": "ישראל",
	"REGION_US": "ארצות הברית",
	"REGION_CA": "קנדה",
	"REGION_GB": "בריטניה",
	"REGION_AU": "אוסטרליה",
	"REGION_FR": "צרפת",
	"REGION_DE": "גרמניה",
	"REGION_IT": "איטליה",
	"REGION_ES": "ספרד",
	"REGION_JP": "יפן",
}
