package usecase

// Тексты уведомлений пользователю
const (
	MsgCreated      = "URL acortada exitosamente!"
	MsgCreateFailed = "Error al acortar la URL"

	MsgResolved       = "URL encontrada!"
	MsgResolveFailed  = "Shortcode no encontrado"
	MsgStatsLoaded    = "Estadísticas obtenidas!"
	MsgStatsFailed    = "No se pudieron obtener las estadísticas"
	MsgUpdated        = "URL actualizada exitosamente!"
	MsgUpdateFailed   = "Error al actualizar la URL"
	MsgDeleted        = "Shortcode eliminado exitosamente!"
	MsgDeleteFailed   = "Error al eliminar el shortcode"
	MsgCopied         = "Copiado al portapapeles!"
	MsgNothingToCopy  = "No hay nada que copiar al portapapeles!"
	MsgNothingToOpen  = "URL es nulo"
	DeleteConfirmText = "¿Estás seguro de que quieres eliminar este shortcode?"
)
