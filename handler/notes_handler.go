package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CreateNote(c, c.GetString("user_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, note)
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.GetNote(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var patch dto.NotePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c, c.Param("id"), c.GetString("user_id"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

// TrashNoteHandler soft-deletes a note into the 30-day trash.
func TrashNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.SoftDeleteNote(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func RestoreNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.RestoreNote(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

// PermanentDeleteHandler removes a note irrecoverably.
func PermanentDeleteHandler(c *gin.Context, notesService *usecase.NotesService) {
	if err := notesService.PermanentlyDeleteNote(c, c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted permanently"})
}

func RemoveChecklistItemHandler(c *gin.Context, notesService *usecase.NotesService) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid item index")
		return
	}

	note, err := notesService.RemoveChecklistItem(c, c.Param("id"), c.GetString("user_id"), index)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.ListActiveNotes(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func GetArchivedNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.ListArchivedNotes(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func GetTrashedNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.ListTrashedNotes(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.SearchNotes(c, c.GetString("user_id"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func GetNotesByTagHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.ListNotesByTag(c, c.GetString("user_id"), c.Param("tag"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func GetAllTagsHandler(c *gin.Context, notesService *usecase.NotesService) {
	tags, err := notesService.ListAllTags(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tags)
}

func GetDueDateNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	buckets, err := notesService.ClassifyByDueDate(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, buckets)
}
