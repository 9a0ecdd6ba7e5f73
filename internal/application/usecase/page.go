package usecase

import (
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

func toPage(p dto.PageRequest) repository.Page {
	p.DefaultPage()
	return repository.Page{Limit: p.Limit, Offset: p.Offset}
}

func pageResponse(p repository.Page, total int) dto.PageResponse {
	return dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total}
}
