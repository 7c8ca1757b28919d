package services

// The fixed outbound message set.
const (
	msgInsufficientPermission = "❌ У вас недостаточно прав для выполнения этой операции."
	msgGreetingFmt            = "Добро пожаловать! Ваша роль: %s\nВыберите действие:"
	msgStopping               = "Останавливаю бота..."
	msgMainMenu               = "Главное меню:"
	msgEventsMenu             = "Управление событиями:"
	msgNoEvents               = "Событий пока нет."
	msgOperationCancelled     = "Операция отменена."

	msgPromptName      = "Введите название события:"
	msgNameEmpty       = "Название события не может быть пустым. Попробуйте еще раз:"
	msgPromptDate      = "Введите дату события (в формате ДД.ММ.ГГГГ):"
	msgBadDate         = "Неверный формат даты. Используйте ДД.ММ.ГГГГ (например, 25.12.2024):"
	msgPromptOrganizer = "Введите название организатора:"
	msgOrganizerEmpty  = "Название организатора не может быть пустым. Попробуйте еще раз:"
	msgPromptPrice     = "Введите цену за участие (число или диапазон, например: 500 или 300-1000, если событие бесплатное - укажите 0):"
	msgBadPrice        = "Неверный формат цены. Используйте число (500) или диапазон (300-1000):"
	msgPromptPlace     = "Введите место проведения:"
	msgPlaceEmpty      = "Место проведения не может быть пустым. Попробуйте еще раз:"
	msgPromptLink      = "Введите ссылку на событие:"
	msgLinkEmpty       = "Ссылка не может быть пустой. Попробуйте еще раз:"
	msgEventAdded      = "Событие успешно добавлено! ✅"
	msgEventSaveFailed = "Не удалось сохранить событие. Попробуйте еще раз:"

	msgPromptDeleteName = "Введите название события для удаления:"
	msgDeleteNameEmpty  = "Название события не может быть пустым. Введите название события для удаления:"
	msgEventNotFoundFmt = "Событие с названием '%s' не найдено.\nВведите название события для удаления:"
	msgDeleteCancelled  = "Удаление отменено."
	msgDeletedFmt       = "✅ Событие '%s' успешно удалено!"
	msgDeleteFailedFmt  = "❌ Ошибка при удалении события '%s'."
	msgUnknownCommand   = "Неизвестная команда. Удаление отменено."
)
