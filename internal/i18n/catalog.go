package i18n

type Key string

const (
	KeyChooseLanguage       Key = "choose_language"
	KeyStart                Key = "start"
	KeyRegistrationRequired Key = "registration_required"
	KeyAskName              Key = "ask_name"
	KeyInvalidName          Key = "invalid_name"
	KeyAskContact           Key = "ask_contact"
	KeyContactRequired      Key = "contact_required"
	KeyContactNotOwner      Key = "contact_not_owner"
	KeyRegistered           Key = "registered"
	KeyContactUpdated       Key = "contact_updated"
	KeySalutation           Key = "salutation"

	KeyBtnShareContact   Key = "btn_share_contact"
	KeyBtnServices       Key = "btn_services"
	KeyBtnHours          Key = "btn_hours"
	KeyBtnBook           Key = "btn_book"
	KeyBtnAddress        Key = "btn_address"
	KeyBtnAsk            Key = "btn_ask"
	KeyBtnMyAppointments Key = "btn_my_appointments"
	KeyBtnCancel         Key = "btn_cancel"
	KeyBtnNoPreference   Key = "btn_no_preference"

	KeyServices Key = "services"
	KeyHours    Key = "hours"
	KeyAddress  Key = "address"
	KeyAsk      Key = "ask"

	KeyBookingAskService  Key = "booking_ask_service"
	KeyBookingAskDoctor   Key = "booking_ask_doctor"
	KeyBookingChooseSlot  Key = "booking_choose_slot"
	KeyBookingNoSlots     Key = "booking_no_slots"
	KeyBookingInvalidSlot Key = "booking_invalid_slot"
	KeyBookingSlotTaken   Key = "booking_slot_taken"
	KeyBookingConfirmed   Key = "booking_confirmed"
	KeyBookingCancelled   Key = "booking_cancelled"
	KeyBookingInvalid     Key = "booking_invalid"
	KeyAdminBooking       Key = "admin_booking"

	KeyMyAppointmentsEmpty  Key = "my_appointments_empty"
	KeyMyAppointmentsHeader Key = "my_appointments_header"
	KeyAppointmentLine      Key = "appointment_line"

	KeyReminder        Key = "reminder"
	KeyAIUnavailable   Key = "ai_unavailable"
	KeyRateLimited     Key = "rate_limited"
	KeyImageFailed     Key = "image_failed"
	KeyImageDisclaimer Key = "image_disclaimer"
	KeyGenericError    Key = "generic_error"
	KeyBroadcastDone   Key = "broadcast_done"
)

// LanguageButton is the keyboard label offered for each language.
var LanguageButton = map[Lang]string{
	Farsi:   "فارسی / Farsi",
	English: "English",
	Arabic:  "العربية / Arabic",
	Russian: "Русский / Russian",
}

var catalog = map[Lang]map[Key]string{
	Farsi: {
		KeyChooseLanguage:       "لطفاً زبان خود را انتخاب کنید:\nPlease choose your language:",
		KeyStart:                "سلام، من منشی هوشمند Gemini Medical Center هستم.\nبرای شروع، لطفاً زبان خود را انتخاب کنید:",
		KeyRegistrationRequired: "برای استفاده از منشی هوشمند، ابتدا باید ثبت‌نام کوتاه انجام دهید.\nلطفاً زبان خود را انتخاب کنید:",
		KeyAskName:              "لطفاً نام خود را وارد کنید:",
		KeyInvalidName:          "لطفاً نام خود را به صورت متن بنویسید:",
		KeyAskContact:           "برای تأیید شماره، دکمه «ارسال شماره تماس» را بزنید:",
		KeyContactRequired:      "شماره تایپ‌شده پذیرفته نمی‌شود. لطفاً فقط از دکمه «ارسال شماره تماس» استفاده کنید.",
		KeyContactNotOwner:      "لطفاً شماره تماس خودتان را ارسال کنید.",
		KeyRegistered:           "%s عزیز، ثبت‌نام شما انجام شد.\nاز منوی زیر می‌توانید خدمات، ساعات کاری یا رزرو نوبت را انتخاب کنید.",
		KeyContactUpdated:       "شماره تماس شما به‌روزرسانی شد.",
		KeySalutation:           "%s عزیز، ",

		KeyBtnShareContact:   "ارسال شماره تماس",
		KeyBtnServices:       "خدمات",
		KeyBtnHours:          "ساعات کاری",
		KeyBtnBook:           "رزرو نوبت",
		KeyBtnAddress:        "آدرس مرکز",
		KeyBtnAsk:            "سوال از منشی",
		KeyBtnMyAppointments: "نوبت‌های من",
		KeyBtnCancel:         "لغو",
		KeyBtnNoPreference:   "فرقی نمی‌کند",

		KeyServices: "خدمات اصلی Gemini Medical Center:\n• ویزیت و چکاپ دندان\n• جرمگیری و پولیش\n• سفید کردن دندان\n• پرکردن و ترمیم دندان\n• روکش و لمینت\n• ایمپلنت\n• ارتودنسی\n• درمان‌های اورژانسی\n\nاگر درباره هر مورد سوال دارید، بپرسید.",
		KeyHours:    "ساعات کاری Gemini Medical Center:\nهر روز از ساعت ۱۰:۰۰ تا ۲۱:۰۰\n\nبرای رزرو نوبت از دکمه «رزرو نوبت» استفاده کنید.",
		KeyAddress:  "آدرس Gemini Medical Center:\n635 Al Wasl Rd - Al Safa 1 - Dubai - United Arab Emirates\n\nhttps://maps.google.com/?q=Gemini+Medical+Center+Dubai",
		KeyAsk:      "سوال خود را درباره خدمات، قیمت‌ها یا نحوه رزرو بنویسید.\nمنشی هوشمند براساس اطلاعات کلینیک پاسخ می‌دهد.",

		KeyBookingAskService:  "برای چه خدمتی نوبت می‌خواهید؟ (مثلاً: جرمگیری، چکاپ، ایمپلنت)",
		KeyBookingAskDoctor:   "آیا دکتر خاصی مدنظر دارید؟ نام دکتر را بنویسید یا «فرقی نمی‌کند» را بزنید.",
		KeyBookingChooseSlot:  "یکی از زمان‌های خالی زیر را انتخاب کنید:",
		KeyBookingNoSlots:     "در حال حاضر زمان خالی وجود ندارد. لطفاً بعداً دوباره تلاش کنید.",
		KeyBookingInvalidSlot: "لطفاً یکی از زمان‌های نمایش داده‌شده را انتخاب کنید.",
		KeyBookingSlotTaken:   "متأسفانه این زمان همین حالا رزرو شد. لطفاً زمان دیگری انتخاب کنید:",
		KeyBookingConfirmed:   "نوبت شما ثبت شد.\nخدمت: %s\nدکتر: %s\nزمان: %s",
		KeyBookingCancelled:   "فرآیند رزرو لغو شد. هر زمان خواستید دوباره از دکمه «رزرو نوبت» استفاده کنید.",
		KeyBookingInvalid:     "لطفاً پاسخ را به صورت متن بنویسید.",
		KeyAdminBooking:       "نوبت جدید:\nنام: %s\nشماره تماس: %s\nخدمت: %s\nدکتر: %s\nزمان: %s\nchat id: %s",

		KeyMyAppointmentsEmpty:  "نوبت فعالی ندارید.",
		KeyMyAppointmentsHeader: "نوبت‌های شما:",
		KeyAppointmentLine:      "• %s - %s (%s)",

		KeyReminder:        "یادآوری: نوبت شما فردا ساعت %s برای «%s» است.",
		KeyAIUnavailable:   "متأسفانه الان نمی‌توانم پاسخ دقیقی بدهم. لطفاً چند لحظه بعد دوباره تلاش کنید.",
		KeyRateLimited:     "پیام‌های زیادی فرستادید. لطفاً کمی صبر کنید.",
		KeyImageFailed:     "دریافت تصویر ممکن نشد. لطفاً دوباره ارسال کنید.",
		KeyImageDisclaimer: "⚠️ این تحلیل تشخیص پزشکی نیست. برای تشخیص نهایی باید به دندان‌پزشک مراجعه کنید.",
		KeyGenericError:    "خطایی رخ داد. لطفاً دوباره تلاش کنید.",
		KeyBroadcastDone:   "پیام به %d نفر ارسال شد، %d ناموفق.",
	},
	English: {
		KeyChooseLanguage:       "Please choose your language:",
		KeyStart:                "Hello, I am the smart receptionist of Gemini Medical Center.\nTo begin, please choose your language:",
		KeyRegistrationRequired: "Please complete a short registration before using the assistant.\nChoose your language:",
		KeyAskName:              "Please enter your name:",
		KeyInvalidName:          "Please type your name as text:",
		KeyAskContact:           "Tap “Share contact” below to verify your phone number:",
		KeyContactRequired:      "Typed numbers are not accepted. Please use the “Share contact” button.",
		KeyContactNotOwner:      "Please share your own contact.",
		KeyRegistered:           "Dear %s, your registration is completed.\nYou can now use the menu to see services, working hours or book an appointment.",
		KeyContactUpdated:       "Your phone number has been updated.",
		KeySalutation:           "Dear %s, ",

		KeyBtnShareContact:   "Share contact",
		KeyBtnServices:       "Services",
		KeyBtnHours:          "Working hours",
		KeyBtnBook:           "Book Appointment",
		KeyBtnAddress:        "Clinic address",
		KeyBtnAsk:            "Ask the receptionist",
		KeyBtnMyAppointments: "My appointments",
		KeyBtnCancel:         "Cancel",
		KeyBtnNoPreference:   "Any",

		KeyServices: "Gemini Medical Center services:\n• Dental check-up\n• Cleaning and polishing\n• Whitening\n• Fillings\n• Crowns and veneers\n• Implants\n• Orthodontics\n• Emergency care\n\nAsk me about any of them.",
		KeyHours:    "Gemini Medical Center is open every day 10:00–21:00.\n\nUse “Book Appointment” to reserve a visit.",
		KeyAddress:  "Gemini Medical Center:\n635 Al Wasl Rd - Al Safa 1 - Dubai - United Arab Emirates\n\nhttps://maps.google.com/?q=Gemini+Medical+Center+Dubai",
		KeyAsk:      "Write your question about services, prices or booking.\nThe assistant answers based on the clinic information.",

		KeyBookingAskService:  "Which service would you like to book? (e.g. cleaning, check-up, implant)",
		KeyBookingAskDoctor:   "Do you prefer a specific doctor? Type the name or tap “Any”.",
		KeyBookingChooseSlot:  "Choose one of the available times:",
		KeyBookingNoSlots:     "There are no free times right now. Please try again later.",
		KeyBookingInvalidSlot: "Please pick one of the times shown.",
		KeyBookingSlotTaken:   "Sorry, that time was just taken. Please pick another one:",
		KeyBookingConfirmed:   "Your appointment is booked.\nService: %s\nDoctor: %s\nTime: %s",
		KeyBookingCancelled:   "Booking cancelled. Use “Book Appointment” whenever you are ready.",
		KeyBookingInvalid:     "Please answer with text.",
		KeyAdminBooking:       "New appointment:\nName: %s\nPhone: %s\nService: %s\nDoctor: %s\nTime: %s\nchat id: %s",

		KeyMyAppointmentsEmpty:  "You have no upcoming appointments.",
		KeyMyAppointmentsHeader: "Your appointments:",
		KeyAppointmentLine:      "• %s - %s (%s)",

		KeyReminder:        "Reminder: your appointment for “%[2]s” is tomorrow at %[1]s.",
		KeyAIUnavailable:   "Sorry, I can't answer right now. Please try again in a moment.",
		KeyRateLimited:     "You are sending messages too fast. Please wait a little.",
		KeyImageFailed:     "I couldn't get the image. Please send it again.",
		KeyImageDisclaimer: "⚠️ This analysis is not a medical diagnosis. Please visit a dentist for a final diagnosis.",
		KeyGenericError:    "Something went wrong. Please try again.",
		KeyBroadcastDone:   "Broadcast sent to %d, failed for %d.",
	},
	Arabic: {
		KeyChooseLanguage:       "من فضلك اختر لغتك:",
		KeyStart:                "مرحباً، أنا موظف الاستقبال الذكي في Gemini Medical Center.\nللبدء، اختر لغتك:",
		KeyRegistrationRequired: "يرجى إكمال تسجيل قصير قبل استخدام المساعد.\nاختر لغتك:",
		KeyAskName:              "من فضلك اكتب اسمك:",
		KeyInvalidName:          "من فضلك اكتب اسمك كنص:",
		KeyAskContact:           "اضغط «مشاركة جهة الاتصال» للتحقق من رقمك:",
		KeyContactRequired:      "لا يتم قبول الأرقام المكتوبة. من فضلك استخدم زر «مشاركة جهة الاتصال».",
		KeyContactNotOwner:      "من فضلك شارك جهة الاتصال الخاصة بك.",
		KeyRegistered:           "%s، تم تسجيل بياناتك.\nيمكنك الآن استخدام الأزرار لمعرفة الخدمات أو حجز موعد.",
		KeyContactUpdated:       "تم تحديث رقم هاتفك.",
		KeySalutation:           "عزيزي/عزيزتي %s، ",

		KeyBtnShareContact:   "مشاركة جهة الاتصال",
		KeyBtnServices:       "الخدمات",
		KeyBtnHours:          "ساعات العمل",
		KeyBtnBook:           "حجز موعد",
		KeyBtnAddress:        "عنوان المركز",
		KeyBtnAsk:            "سؤال موظف الاستقبال",
		KeyBtnMyAppointments: "مواعيدي",
		KeyBtnCancel:         "إلغاء",
		KeyBtnNoPreference:   "لا يهم",

		KeyServices: "خدمات Gemini Medical Center:\n• فحص الأسنان\n• تنظيف وتلميع\n• تبييض\n• حشوات\n• تيجان وقشور\n• زراعة\n• تقويم\n• طوارئ\n\nاسألني عن أي منها.",
		KeyHours:    "يعمل Gemini Medical Center يومياً من 10:00 إلى 21:00.\n\nاستخدم «حجز موعد» للحجز.",
		KeyAddress:  "Gemini Medical Center:\n635 Al Wasl Rd - Al Safa 1 - Dubai - United Arab Emirates\n\nhttps://maps.google.com/?q=Gemini+Medical+Center+Dubai",
		KeyAsk:      "اكتب سؤالك عن الخدمات أو الأسعار أو الحجز.",

		KeyBookingAskService:  "ما الخدمة التي تريد حجزها؟ (مثلاً: تنظيف، فحص، زراعة)",
		KeyBookingAskDoctor:   "هل تفضل طبيباً معيناً؟ اكتب الاسم أو اضغط «لا يهم».",
		KeyBookingChooseSlot:  "اختر أحد المواعيد المتاحة:",
		KeyBookingNoSlots:     "لا توجد مواعيد متاحة حالياً. حاول لاحقاً.",
		KeyBookingInvalidSlot: "من فضلك اختر أحد المواعيد المعروضة.",
		KeyBookingSlotTaken:   "عذراً، تم حجز هذا الموعد للتو. اختر موعداً آخر:",
		KeyBookingConfirmed:   "تم حجز موعدك.\nالخدمة: %s\nالطبيب: %s\nالوقت: %s",
		KeyBookingCancelled:   "تم إلغاء الحجز. استخدم «حجز موعد» متى شئت.",
		KeyBookingInvalid:     "من فضلك أجب بنص.",

		KeyMyAppointmentsEmpty:  "ليس لديك مواعيد قادمة.",
		KeyMyAppointmentsHeader: "مواعيدك:",
		KeyAppointmentLine:      "• %s - %s (%s)",

		KeyReminder:        "تذكير: موعدك لـ«%[2]s» غداً الساعة %[1]s.",
		KeyAIUnavailable:   "عذراً، لا أستطيع الإجابة الآن. حاول بعد قليل.",
		KeyRateLimited:     "أنت ترسل رسائل بسرعة كبيرة. انتظر قليلاً.",
		KeyImageFailed:     "تعذر استلام الصورة. أرسلها مرة أخرى.",
		KeyImageDisclaimer: "⚠️ هذا التحليل ليس تشخيصاً طبياً. يرجى زيارة طبيب الأسنان للتشخيص النهائي.",
		KeyGenericError:    "حدث خطأ. حاول مرة أخرى.",
	},
	Russian: {
		KeyChooseLanguage:       "Пожалуйста, выберите язык:",
		KeyStart:                "Здравствуйте, я умный администратор Gemini Medical Center.\nДля начала выберите язык:",
		KeyRegistrationRequired: "Перед использованием ассистента пройдите короткую регистрацию.\nВыберите язык:",
		KeyAskName:              "Пожалуйста, введите ваше имя:",
		KeyInvalidName:          "Пожалуйста, напишите имя текстом:",
		KeyAskContact:           "Нажмите «Отправить контакт», чтобы подтвердить номер:",
		KeyContactRequired:      "Набранный вручную номер не принимается. Используйте кнопку «Отправить контакт».",
		KeyContactNotOwner:      "Пожалуйста, отправьте свой собственный контакт.",
		KeyRegistered:           "%s, регистрация завершена.\nТеперь вы можете использовать кнопки для просмотра услуг или записи на приём.",
		KeyContactUpdated:       "Ваш номер телефона обновлён.",
		KeySalutation:           "%s, ",

		KeyBtnShareContact:   "Отправить контакт",
		KeyBtnServices:       "Услуги",
		KeyBtnHours:          "Часы работы",
		KeyBtnBook:           "Записаться",
		KeyBtnAddress:        "Адрес клиники",
		KeyBtnAsk:            "Вопрос администратору",
		KeyBtnMyAppointments: "Мои записи",
		KeyBtnCancel:         "Отмена",
		KeyBtnNoPreference:   "Не важно",

		KeyServices: "Услуги Gemini Medical Center:\n• Осмотр\n• Чистка и полировка\n• Отбеливание\n• Пломбы\n• Коронки и виниры\n• Импланты\n• Ортодонтия\n• Экстренная помощь\n\nСпрашивайте о любой из них.",
		KeyHours:    "Gemini Medical Center работает ежедневно с 10:00 до 21:00.\n\nДля записи нажмите «Записаться».",
		KeyAddress:  "Gemini Medical Center:\n635 Al Wasl Rd - Al Safa 1 - Dubai - United Arab Emirates\n\nhttps://maps.google.com/?q=Gemini+Medical+Center+Dubai",
		KeyAsk:      "Напишите вопрос об услугах, ценах или записи.",

		KeyBookingAskService:  "На какую услугу вы хотите записаться? (например: чистка, осмотр, имплант)",
		KeyBookingAskDoctor:   "Есть ли предпочтения по врачу? Напишите имя или нажмите «Не важно».",
		KeyBookingChooseSlot:  "Выберите одно из свободных времён:",
		KeyBookingNoSlots:     "Сейчас нет свободного времени. Попробуйте позже.",
		KeyBookingInvalidSlot: "Пожалуйста, выберите одно из показанных времён.",
		KeyBookingSlotTaken:   "К сожалению, это время только что заняли. Выберите другое:",
		KeyBookingConfirmed:   "Вы записаны.\nУслуга: %s\nВрач: %s\nВремя: %s",
		KeyBookingCancelled:   "Запись отменена. Нажмите «Записаться», когда будете готовы.",
		KeyBookingInvalid:     "Пожалуйста, ответьте текстом.",

		KeyMyAppointmentsEmpty:  "У вас нет предстоящих записей.",
		KeyMyAppointmentsHeader: "Ваши записи:",
		KeyAppointmentLine:      "• %s - %s (%s)",

		KeyReminder:        "Напоминание: завтра в %s у вас приём («%s»).",
		KeyAIUnavailable:   "Извините, сейчас не могу ответить. Попробуйте чуть позже.",
		KeyRateLimited:     "Вы отправляете сообщения слишком часто. Подождите немного.",
		KeyImageFailed:     "Не удалось получить изображение. Отправьте его ещё раз.",
		KeyImageDisclaimer: "⚠️ Этот анализ не является медицинским диагнозом. Для окончательного диагноза посетите стоматолога.",
		KeyGenericError:    "Что-то пошло не так. Попробуйте ещё раз.",
	},
}
